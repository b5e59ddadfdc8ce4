package entity

// IDs de rol fijos. Los roles User* son de solo lectura: nunca se les ofrecen
// transiciones y el servidor las rechaza con 403.
const (
	RoleSuperAdmin    = 1
	RoleAdminChile    = 2
	RoleAdminPeru     = 3
	RoleUserChile     = 4
	RoleUserPeru      = 5
	RoleServicioChile = 6
	RoleServicioPeru  = 7
)

// Role rol de un usuario administrativo.
type Role struct {
	ID   int
	Name string
}

var roles = []Role{
	{RoleSuperAdmin, "SuperAdmin"},
	{RoleAdminChile, "AdminChile"},
	{RoleAdminPeru, "AdminPeru"},
	{RoleUserChile, "UserChile"},
	{RoleUserPeru, "UserPeru"},
	{RoleServicioChile, "ServicioChile"},
	{RoleServicioPeru, "ServicioPeru"},
}

// RoleByID devuelve el rol para un ID conocido.
func RoleByID(id int) (Role, bool) {
	for _, r := range roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// RoleByName devuelve el rol por su nombre (el formulario de usuarios envía el nombre).
func RoleByName(name string) (Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

// CountryCode devuelve el scope de país del rol. SuperAdmin devuelve vacío:
// puede elegir el scope por petición.
func (r Role) CountryCode() string {
	switch r.ID {
	case RoleAdminChile, RoleUserChile, RoleServicioChile:
		return "CL"
	case RoleAdminPeru, RoleUserPeru, RoleServicioPeru:
		return "PE"
	default:
		return ""
	}
}

// SoloLectura indica si el rol solo puede consultar (roles 4 y 5).
func (r Role) SoloLectura() bool {
	return r.ID == RoleUserChile || r.ID == RoleUserPeru
}

// RoleSoloLectura atajo para el middleware, que solo tiene el ID del token.
func RoleSoloLectura(roleID int) bool {
	return roleID == RoleUserChile || roleID == RoleUserPeru
}
