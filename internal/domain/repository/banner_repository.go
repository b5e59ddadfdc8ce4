package repository

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// BannerRepository puerto de persistencia para banners (DIP).
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id int64) (*entity.Banner, error)
	List(ctx context.Context) ([]*entity.Banner, error)
	// GetActiveByOrder banner activo en una posición; nil si está libre.
	GetActiveByOrder(ctx context.Context, order int) (*entity.Banner, error)
	SetOrder(ctx context.Context, id int64, order int) error
	SetActive(ctx context.Context, id int64, isActive bool) error
}
