package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
)

// BannerHandler gestión de los banners promocionales.
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler construye el handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// List godoc
// @Summary      Listar banners
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un banner
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del banner"
// @Success      200  {object}  dto.BannerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /banners/{id} [get]
func (h *BannerHandler) GetByID(c *fiber.Ctx) error {
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

// Upload godoc
// @Summary      Subir banner nuevo (solo JPEG, máx 4 MB)
// @Tags         banners
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true  "Nombre del banner"
// @Param        order  formData  int     true  "Posición"
// @Param        file   formData  file    true  "Imagen JPEG"
// @Success      201    {object}  dto.BannerResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Router       /files/upload [post]
func (h *BannerHandler) Upload(c *fiber.Ctx) error {
	order, err := strconv.Atoi(c.FormValue("order"))
	if err != nil || order <= 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	file, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	out, err := h.uc.Upload(c.Context(), c.FormValue("name"), fh.Filename, fh.Size, file, order)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetOrder godoc
// @Summary      Mover un banner de posición
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BannerOrderRequest  true  "ID y posición"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /banners/order [put]
func (h *BannerHandler) SetOrder(c *fiber.Ctx) error {
	var in dto.BannerOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetOrder(c.Context(), in.ID, in.Order); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "posición actualizada"})
}

// Remove godoc
// @Summary      Desactivar un banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BannerIDRequest  true  "ID del banner"
// @Success      200   {object}  map[string]string
// @Router       /banners/remove [put]
func (h *BannerHandler) Remove(c *fiber.Ctx) error {
	var in dto.BannerIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Remove(c.Context(), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "banner desactivado"})
}

// Activate godoc
// @Summary      Reactivar un banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BannerIDRequest  true  "ID del banner"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /banners/activate [put]
func (h *BannerHandler) Activate(c *fiber.Ctx) error {
	var in dto.BannerIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Activate(c.Context(), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "banner activado"})
}
