package entity

import "time"

// AdminUser usuario del panel administrativo. El password nunca sale de la
// capa de aplicación: solo se persiste el hash bcrypt.
type AdminUser struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role devuelve el rol del usuario; un RoleID desconocido devuelve el rol vacío.
func (u AdminUser) Role() Role {
	r, _ := RoleByID(u.RoleID)
	return r
}
