package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// ContactHandler maneja el triaje de contactos.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List godoc
// @Summary      Listar contactos del scope
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Param        page     query  int     false  "Página (cero-based)"
// @Param        name     query  string  false  "Búsqueda por nombre"
// @Param        status   query  string  false  "Filtro por estado"
// @Success      200      {object}  dto.ListContactsResponse
// @Router       /admin/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), repository.ContactFilter{
		CountryCode: ScopeCountry(c),
		Name:        c.Query("name"),
		Status:      c.Query("status"),
		Limit:       page.Limit,
		Page:        page.Page,
		IDAsc:       page.IDAsc(),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un contacto
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contacto"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id, ScopeCountry(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Servicio godoc
// @Summary      Marcar contacto como servicio técnico
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactIDRequest  true  "ID del contacto"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/contacts [put]
func (h *ContactHandler) Servicio(c *fiber.Ctx) error {
	var in dto.ContactIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Servicio(c.Context(), in.ID, ScopeCountry(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "contacto en servicio"})
}

// Derivado godoc
// @Summary      Derivar contacto a un área
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactDerivadoRequest  true  "ID y área"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/contacts/derivado [put]
func (h *ContactHandler) Derivado(c *fiber.Ctx) error {
	var in dto.ContactDerivadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Derivado(c.Context(), in.ID, ScopeCountry(c), in.Department); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "contacto derivado"})
}

// Finalizado godoc
// @Summary      Cerrar contacto
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactIDRequest  true  "ID del contacto"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/contacts/finalizado [put]
func (h *ContactHandler) Finalizado(c *fiber.Ctx) error {
	var in dto.ContactIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Finalizado(c.Context(), in.ID, ScopeCountry(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "contacto finalizado"})
}
