package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// ClientHandler lecturas sobre los clientes del sitio público.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes del scope
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Tamaño de página"  default(10)
// @Param        page   query  int     false  "Página (cero-based)"
// @Param        name   query  string  false  "Búsqueda por nombre"
// @Success      200    {object}  dto.ListClientsResponse
// @Router       /admin/users [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), repository.WebUserFilter{
		CountryCode: ScopeCountry(c),
		Name:        c.Query("name"),
		Limit:       page.Limit,
		Page:        page.Page,
		IDAsc:       page.IDAsc(),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar clientes por prefijo de email
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        email  query  string  true  "Prefijo de email"
// @Success      200    {array}  dto.WebUserRow
// @Router       /admin/users/email [get]
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]dto.WebUserRow{})
	}
	out, err := h.uc.SearchByEmail(c.Context(), ScopeCountry(c), email, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de un cliente (cotizaciones y contactos)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/invoices/user/{id} [get]
func (h *ClientHandler) History(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.History(c.Context(), id, ScopeCountry(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
