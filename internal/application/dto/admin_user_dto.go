package dto

import "time"

// AdminUserResponse usuario del panel; el hash de password nunca se expone.
type AdminUserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      StatusRef `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListAdminUsersResponse página de usuarios del panel.
type ListAdminUsersResponse struct {
	Users      []AdminUserResponse `json:"users"`
	TotalPages int64               `json:"totalPages"`
}

// CreateAdminUserRequest alta de usuario administrativo. Role viaja por nombre
// (AdminChile, UserPeru, ...), como lo envía el formulario.
type CreateAdminUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateAdminUserRequest edición; el password se reingresa siempre.
type UpdateAdminUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EnableAdminUserRequest habilitar/inhabilitar.
type EnableAdminUserRequest struct {
	IsActive bool `json:"isActive"`
}
