package repository

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// WebUserFilter parámetros del listado de clientes (page cero-based).
type WebUserFilter struct {
	CountryCode string
	Name        string
	Limit       int
	Page        int
	IDAsc       bool
}

// WebUserRepository lectura de clientes del sitio público (DIP).
type WebUserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.WebUser, error)
	List(ctx context.Context, f WebUserFilter) ([]*entity.WebUser, int64, error)
	// SearchByEmail prefijo de email para el combobox de nueva cotización.
	SearchByEmail(ctx context.Context, countryCode, email string, limit int) ([]*entity.WebUser, error)
}
