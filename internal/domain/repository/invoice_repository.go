package repository

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// InvoiceFilter parámetros del listado paginado de cotizaciones.
// Page es cero-based, tal como lo envía el panel.
type InvoiceFilter struct {
	CountryCode string // vacío = todos los países (solo SuperAdmin)
	Name        string // búsqueda parcial por nombre del solicitante
	Status      string // vacío = todos los estados
	Limit       int
	Page        int
	IDAsc       bool // orden por id ascendente; por defecto descendente
}

// InvoiceRepository puerto de persistencia para cotizaciones, detalles y eventos (DIP).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// List devuelve la página pedida y el total de filas que matchean el filtro.
	List(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, int64, error)
	ListByWebUser(ctx context.Context, userID int64, countryCode string) ([]*entity.Invoice, error)
	// SetStatus actualiza estado y campos asociados (monto, URL del documento).
	SetStatus(ctx context.Context, invoice *entity.Invoice) error
	GetDetails(ctx context.Context, invoiceID int64) ([]*entity.InvoiceDetail, error)
	// GetEvents historial cronológico con el nombre del admin resuelto.
	GetEvents(ctx context.Context, invoiceID int64) ([]*entity.InvoiceEvent, error)
	AddEvent(ctx context.Context, event *entity.InvoiceEvent) error
}
