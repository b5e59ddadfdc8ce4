package repository

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// AdminUserRepository puerto de persistencia para usuarios del panel (DIP).
type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	GetByID(ctx context.Context, id int64) (*entity.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	// List todos los usuarios administrativos; el panel no pagina esta vista.
	List(ctx context.Context) ([]*entity.AdminUser, error)
	Update(ctx context.Context, user *entity.AdminUser) error
	SetActive(ctx context.Context, id int64, isActive bool) error
}
