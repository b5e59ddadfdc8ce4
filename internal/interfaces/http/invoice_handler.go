package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// Tamaño máximo de un archivo subido.
const maxUploadSize = 4 << 20

// InvoiceHandler maneja las peticiones del flujo de cotizaciones.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// parseID convierte un path param o form value a int64.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// List godoc
// @Summary      Listar cotizaciones del scope
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Param        page     query  int     false  "Página (cero-based)"
// @Param        name     query  string  false  "Búsqueda por nombre"
// @Param        status   query  string  false  "Filtro por estado"
// @Param        idOrder  query  string  false  "asc|desc"
// @Param        countryCode  query  string  false  "Solo SuperAdmin: CL|PE"
// @Success      200      {object}  dto.ListInvoicesResponse
// @Router       /admin/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), repository.InvoiceFilter{
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
// @Summary      Detalle de una cotización
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Alta manual de cotización
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Datos del solicitante"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetAdminID(c), ScopeCountry(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateFromContact godoc
// @Summary      Crear cotización desde un contacto
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceFromContactRequest  true  "Contacto origen y datos"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/invoices/invoice-from-contact [post]
func (h *InvoiceHandler) CreateFromContact(c *fiber.Ctx) error {
	var in dto.InvoiceFromContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateFromContact(c.Context(), GetAdminID(c), ScopeCountry(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Upload godoc
// @Summary      Adjuntar documento y pasar a ENVIADA
// @Tags         invoices
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       formData  int     true   "ID de la cotización"
// @Param        comment  formData  string  false  "Comentario"
// @Param        file     formData  file    true   "Documento de la cotización"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /admin/invoices/upload [put]
func (h *InvoiceHandler) Upload(c *fiber.Ctx) error {
	id, err := parseID(c.FormValue("id"))
	if err != nil {
		return respondError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.ErrArchivoRequerido)
	}
	if fh.Size > maxUploadSize {
		return respondError(c, domain.ErrArchivoMuyGrande)
	}
	file, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	if err := h.uc.Upload(c.Context(), GetAdminID(c), id, ScopeCountry(c), c.FormValue("comment"), fh.Filename, file); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cotización enviada"})
}

// Seguimiento godoc
// @Summary      Registrar seguimiento
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransitionRequest  true  "ID y comentario"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/invoices/seguimiento [put]
func (h *InvoiceHandler) Seguimiento(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Seguimiento(c.Context(), GetAdminID(c), in.ID, ScopeCountry(c), in.Comment); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "seguimiento registrado"})
}

// Vendido godoc
// @Summary      Cerrar como vendida
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendidoRequest  true  "ID, comentario y monto"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/invoices/vendido [put]
func (h *InvoiceHandler) Vendido(c *fiber.Ctx) error {
	var in dto.VendidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Vendido(c.Context(), GetAdminID(c), in.ID, ScopeCountry(c), in.Comment, in.TotalAmount); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta registrada"})
}

// Derivado godoc
// @Summary      Derivar la solicitud
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransitionRequest  true  "ID y comentario"
// @Success      200   {object}  map[string]string
// @Router       /admin/invoices/derivado [put]
func (h *InvoiceHandler) Derivado(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Derivado(c.Context(), GetAdminID(c), in.ID, ScopeCountry(c), in.Comment); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cotización derivada"})
}

// Perdido godoc
// @Summary      Cerrar como perdida
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransitionRequest  true  "ID y motivo"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/invoices/perdido [put]
func (h *InvoiceHandler) Perdido(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Perdido(c.Context(), GetAdminID(c), in.ID, ScopeCountry(c), in.Comment); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cotización perdida"})
}
