package dto

// LoginRequest credenciales del panel.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta de login. Con el usuario inactivo el token va vacío
// y el panel muestra el aviso sin iniciar sesión.
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	RoleID      int    `json:"roleId"`
	IsActive    bool   `json:"isActive"`
}
