package usecase

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/ports"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// Límite de un banner: 4 MB y solo JPEG.
const maxBannerSize = 4 << 20

// BannerUseCase gestión de los banners promocionales del sitio.
type BannerUseCase struct {
	banners repository.BannerRepository
	files   ports.FileStore
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(banners repository.BannerRepository, files ports.FileStore) *BannerUseCase {
	return &BannerUseCase{banners: banners, files: files}
}

// List todos los banners, activos e inactivos.
func (uc *BannerUseCase) List(ctx context.Context) ([]dto.BannerResponse, error) {
	rows, err := uc.banners.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, *toBannerResponse(b))
	}
	return out, nil
}

// GetByID un banner.
func (uc *BannerUseCase) GetByID(ctx context.Context, id int64) (*dto.BannerResponse, error) {
	b, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBannerResponse(b), nil
}

// Upload sube un banner nuevo a una posición. Valida JPEG real (por contenido,
// no por extensión), el tamaño máximo y que la posición esté libre.
func (uc *BannerUseCase) Upload(ctx context.Context, name, filename string, size int64, file io.Reader, order int) (*dto.BannerResponse, error) {
	if filename == "" || file == nil {
		return nil, domain.ErrInvalidInput
	}
	if size > maxBannerSize {
		return nil, domain.ErrArchivoMuyGrande
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	head = head[:n]
	if http.DetectContentType(head) != "image/jpeg" {
		return nil, domain.ErrFormatoImagen
	}
	occupied, err := uc.banners.GetActiveByOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if occupied != nil {
		return nil, domain.ErrPosicionOcupada
	}
	url, err := uc.files.Save(ctx, "banners", filename, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		return nil, err
	}
	now := time.Now()
	banner := &entity.Banner{
		Name:      name,
		URL:       url,
		Order:     order,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.banners.Create(ctx, banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// SetOrder mueve un banner a otra posición; falla si está ocupada por otro activo.
func (uc *BannerUseCase) SetOrder(ctx context.Context, id int64, order int) error {
	b, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	occupied, err := uc.banners.GetActiveByOrder(ctx, order)
	if err != nil {
		return err
	}
	if occupied != nil && occupied.ID != id {
		return domain.ErrPosicionOcupada
	}
	return uc.banners.SetOrder(ctx, id, order)
}

// Remove desactiva un banner; la imagen queda almacenada.
func (uc *BannerUseCase) Remove(ctx context.Context, id int64) error {
	return uc.setActive(ctx, id, false)
}

// Activate reactiva un banner; su posición debe estar libre.
func (uc *BannerUseCase) Activate(ctx context.Context, id int64) error {
	return uc.setActive(ctx, id, true)
}

func (uc *BannerUseCase) setActive(ctx context.Context, id int64, active bool) error {
	b, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if active {
		occupied, err := uc.banners.GetActiveByOrder(ctx, b.Order)
		if err != nil {
			return err
		}
		if occupied != nil && occupied.ID != id {
			return domain.ErrPosicionOcupada
		}
	}
	return uc.banners.SetActive(ctx, id, active)
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID,
		Name:      b.Name,
		URL:       b.URL,
		Order:     b.Order,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
