package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
)

// AdminUserHandler administración de usuarios del panel (solo SuperAdmin).
type AdminUserHandler struct {
	uc *usecase.AdminUserUseCase
}

// NewAdminUserHandler construye el handler.
func NewAdminUserHandler(uc *usecase.AdminUserUseCase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios del panel
// @Tags         users-admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Tamaño de página"  default(10)
// @Param        page   query  int  false  "Página (cero-based)"
// @Success      200    {object}  dto.ListAdminUsersResponse
// @Router       /users-admin [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un usuario del panel
// @Tags         users-admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.AdminUserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users-admin/{id} [get]
func (h *AdminUserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de usuario del panel
// @Tags         users-admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.AdminUserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users-admin [post]
func (h *AdminUserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar usuario del panel
// @Tags         users-admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateAdminUserRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AdminUserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users-admin/{id} [patch]
func (h *AdminUserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Enable godoc
// @Summary      Habilitar o inhabilitar un usuario
// @Tags         users-admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.EnableAdminUserRequest  true  "Nuevo estado"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users-admin/enable/{id} [patch]
func (h *AdminUserHandler) Enable(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EnableAdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), id, in.IsActive); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "usuario actualizado"})
}
