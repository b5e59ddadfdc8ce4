package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/pkg/jwt"
)

// Locals keys cargados por AuthMiddleware.
const (
	LocalUserID      = "user_id"
	LocalUserName    = "user_name"
	LocalRoleID      = "role_id"
	LocalCountryCode = "country_code"
)

// AuthMiddleware valida el Bearer Token JWT y carga identidad, rol y scope de
// país a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRoleID, claims.RoleID)
		c.Locals(LocalCountryCode, claims.CountryCode)
		return c.Next()
	}
}

// GetAdminID devuelve el ID del admin autenticado (después del middleware).
func GetAdminID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetRoleID devuelve el rol del admin autenticado.
func GetRoleID(c *fiber.Ctx) int {
	v, _ := c.Locals(LocalRoleID).(int)
	return v
}

// GetCountryCode devuelve el scope de país del token (vacío para SuperAdmin).
func GetCountryCode(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalCountryCode).(string)
	return v
}

// ScopeCountry resuelve el país efectivo de la petición: los roles de país
// siempre operan sobre el suyo; SuperAdmin puede elegir con ?countryCode=CL|PE
// y sin el parámetro ve todos.
func ScopeCountry(c *fiber.Ctx) string {
	if GetRoleID(c) == entity.RoleSuperAdmin {
		return c.Query("countryCode")
	}
	return GetCountryCode(c)
}

// RequireRole autoriza solo a los roles indicados; el resto recibe 403.
func RequireRole(roleIDs ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		for _, allowed := range roleIDs {
			if roleID == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// RequireEscritura rechaza con 403 a los roles de solo lectura. Protege las
// transiciones de estado y las altas aunque el panel no muestre los botones.
func RequireEscritura() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if entity.RoleSoloLectura(GetRoleID(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol de solo lectura"})
		}
		return c.Next()
	}
}
