package repository

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// ContactFilter parámetros del listado paginado de contactos (page cero-based).
type ContactFilter struct {
	CountryCode string
	Name        string
	Status      string
	Limit       int
	Page        int
	IDAsc       bool
}

// ContactRepository puerto de persistencia para contactos (DIP).
type ContactRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Contact, error)
	List(ctx context.Context, f ContactFilter) ([]*entity.Contact, int64, error)
	// ListByEmail historial de contactos de un cliente (por email, dentro del scope).
	ListByEmail(ctx context.Context, email, countryCode string) ([]*entity.Contact, error)
	// SetStatus actualiza estado y, si aplica, el departamento de derivación.
	SetStatus(ctx context.Context, contact *entity.Contact) error
}
