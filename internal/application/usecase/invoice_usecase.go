package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/ports"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
	"github.com/fromm-latam/panel-admin-api/internal/domain/workflow"
)

// InvoiceUseCase casos de uso del flujo de cotizaciones: listado, detalle,
// alta y las transiciones de estado. Toda transición escribe el estado y su
// evento de historial dentro de la misma transacción.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       repository.TxRunner
	files    ports.FileStore
	mailer   ports.Mailer
	log      zerolog.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx repository.TxRunner, files ports.FileStore, mailer ports.Mailer, log zerolog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx, files: files, mailer: mailer, log: log}
}

// pageCount convierte total de filas en total de páginas, que es lo que los
// listados del panel devuelven en totalCount.
func pageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// inScope indica si una entidad del país cc es visible para el scope efectivo
// de la petición. El scope vacío (SuperAdmin sin filtro) ve todo.
func inScope(scope, cc string) bool {
	return scope == "" || scope == cc
}

// List página de cotizaciones del scope.
func (uc *InvoiceUseCase) List(ctx context.Context, f repository.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	rows, total, err := uc.invoices.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceRow, 0, len(rows))
	for _, inv := range rows {
		out = append(out, dto.InvoiceRow{
			ID:        inv.ID,
			Name:      inv.Name,
			Company:   inv.Company,
			Status:    inv.Status,
			CreatedAt: inv.CreatedAt,
		})
	}
	return &dto.ListInvoicesResponse{Cotizaciones: out, TotalCount: pageCount(total, f.Limit)}, nil
}

// GetByID detalle completo: cabecera, líneas e historial. El detalle también
// respeta el scope de país: fuera de scope responde ErrForbidden.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64, countryCode string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inScope(countryCode, inv.CountryCode) {
		return nil, domain.ErrForbidden
	}
	details, err := uc.invoices.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := uc.invoices.GetEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, details, events), nil
}

// Create alta manual desde el panel. La cotización nace PENDIENTE con su
// evento inicial firmado por el admin que la cargó.
func (uc *InvoiceUseCase) Create(ctx context.Context, adminID int64, countryCode string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Invoice{
		UserID:      in.UserID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		Message:     in.Message,
		Status:      entity.InvoicePendiente,
		CountryCode: countryCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.WithinTx(ctx, func(invoices repository.InvoiceRepository, _ repository.ContactRepository) error {
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		return invoices.AddEvent(ctx, &entity.InvoiceEvent{
			InvoiceID:   inv.ID,
			Status:      entity.InvoicePendiente,
			AdminUserID: &adminID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, nil, nil), nil
}

// CreateFromContact crea una cotización desde un contacto PENDIENTE y lo pasa
// a COTIZACIÓN en la misma transacción: o quedan ambos escritos o ninguno.
func (uc *InvoiceUseCase) CreateFromContact(ctx context.Context, adminID int64, countryCode string, in dto.InvoiceFromContactRequest) (*dto.InvoiceResponse, error) {
	if in.ContactID == 0 {
		return nil, domain.ErrInvalidInput
	}
	var inv *entity.Invoice
	err := uc.tx.WithinTx(ctx, func(invoices repository.InvoiceRepository, contacts repository.ContactRepository) error {
		contact, err := contacts.GetByID(ctx, in.ContactID)
		if err != nil {
			return err
		}
		if contact == nil {
			return domain.ErrNotFound
		}
		if !inScope(countryCode, contact.CountryCode) {
			return domain.ErrForbidden
		}
		if !workflow.CanContactTransition(contact.Status, entity.ContactCotizacion) {
			return domain.ErrTransicionInvalida
		}
		now := time.Now()
		inv = &entity.Invoice{
			UserID:      contact.UserID,
			Name:        contact.Name,
			Email:       contact.Email,
			Phone:       contact.Phone,
			Company:     contact.Company,
			Message:     contact.Message,
			Status:      entity.InvoicePendiente,
			CountryCode: contact.CountryCode,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		// El formulario puede pisar los datos del contacto.
		if in.Data.Name != "" {
			inv.Name = in.Data.Name
		}
		if in.Data.Message != "" {
			inv.Message = in.Data.Message
		}
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		if err := invoices.AddEvent(ctx, &entity.InvoiceEvent{
			InvoiceID:   inv.ID,
			Status:      entity.InvoicePendiente,
			AdminUserID: &adminID,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		contact.Status = entity.ContactCotizacion
		contact.UpdatedAt = now
		return contacts.SetStatus(ctx, contact)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, nil, nil), nil
}

// Upload adjunta el documento y pasa la cotización a ENVIADA. El archivo es
// obligatorio: sin documento no hay envío. La legalidad de la transición se
// verifica ANTES de guardar el archivo: un rechazo no deja documentos
// huérfanos en el almacenamiento.
func (uc *InvoiceUseCase) Upload(ctx context.Context, adminID, id int64, countryCode, comment, filename string, file io.Reader) error {
	if filename == "" || file == nil {
		return domain.ErrArchivoRequerido
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if !inScope(countryCode, inv.CountryCode) {
		return domain.ErrForbidden
	}
	if !workflow.CanInvoiceTransition(inv.Status, entity.InvoiceEnviada) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrTransicionInvalida, inv.Status, entity.InvoiceEnviada)
	}
	url, err := uc.files.Save(ctx, "invoices", filename, file)
	if err != nil {
		return err
	}
	var email string
	err = uc.transition(ctx, adminID, id, countryCode, entity.InvoiceEnviada, comment, func(inv *entity.Invoice) {
		inv.InvoiceURL = url
		email = inv.Email
	})
	if err != nil {
		return err
	}
	uc.notifyEnviada(ctx, email, url)
	return nil
}

// Seguimiento registra una gestión sobre una cotización ya enviada.
func (uc *InvoiceUseCase) Seguimiento(ctx context.Context, adminID, id int64, countryCode, comment string) error {
	if comment == "" {
		return domain.ErrComentarioRequerido
	}
	return uc.transition(ctx, adminID, id, countryCode, entity.InvoiceSeguimiento, comment, nil)
}

// Vendido cierra la cotización como venta; el monto debe ser positivo.
func (uc *InvoiceUseCase) Vendido(ctx context.Context, adminID, id int64, countryCode, comment string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrMontoRequerido
	}
	return uc.transition(ctx, adminID, id, countryCode, entity.InvoiceVendido, comment, func(inv *entity.Invoice) {
		inv.TotalAmount = amount
	})
}

// Derivado pasa la solicitud a otra área sin cotizar.
func (uc *InvoiceUseCase) Derivado(ctx context.Context, adminID, id int64, countryCode, comment string) error {
	return uc.transition(ctx, adminID, id, countryCode, entity.InvoiceDerivada, comment, nil)
}

// Perdido cierra la cotización como perdida; el motivo es obligatorio.
func (uc *InvoiceUseCase) Perdido(ctx context.Context, adminID, id int64, countryCode, comment string) error {
	if comment == "" {
		return domain.ErrMotivoRequerido
	}
	return uc.transition(ctx, adminID, id, countryCode, entity.InvoicePerdida, comment, nil)
}

// transition valida el scope de país y la transición contra la tabla de
// estados, y escribe en una transacción el nuevo estado y su evento.
func (uc *InvoiceUseCase) transition(ctx context.Context, adminID, id int64, countryCode, next, comment string, mutate func(*entity.Invoice)) error {
	return uc.tx.WithinTx(ctx, func(invoices repository.InvoiceRepository, _ repository.ContactRepository) error {
		inv, err := invoices.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if !inScope(countryCode, inv.CountryCode) {
			return domain.ErrForbidden
		}
		if !workflow.CanInvoiceTransition(inv.Status, next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrTransicionInvalida, inv.Status, next)
		}
		inv.Status = next
		inv.UpdatedAt = time.Now()
		if mutate != nil {
			mutate(inv)
		}
		if err := invoices.SetStatus(ctx, inv); err != nil {
			return err
		}
		return invoices.AddEvent(ctx, &entity.InvoiceEvent{
			InvoiceID:   id,
			Status:      next,
			Comment:     comment,
			AdminUserID: &adminID,
			CreatedAt:   inv.UpdatedAt,
		})
	})
}

// notifyEnviada avisa al solicitante que su cotización fue enviada. Un fallo
// de correo no revierte la transición: se registra y se sigue.
func (uc *InvoiceUseCase) notifyEnviada(ctx context.Context, email, url string) {
	if uc.mailer == nil || email == "" {
		return
	}
	body := fmt.Sprintf("Su cotización fue enviada. Puede descargarla en: %s", url)
	if err := uc.mailer.Send(ctx, email, "Cotización enviada", body); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("no se pudo notificar la cotización enviada")
	}
}

func toInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail, events []*entity.InvoiceEvent) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		StatusR:     dto.StatusRef{ID: entity.InvoiceStatusID(inv.Status), Name: inv.Status},
		Message:     inv.Message,
		TotalAmount: inv.TotalAmount,
		InvoiceURL:  inv.InvoiceURL,
		CountryCode: inv.CountryCode,
		User: dto.RequesterInfo{
			Name:    inv.Name,
			Email:   inv.Email,
			Phone:   inv.Phone,
			Company: inv.Company,
		},
		InvoiceDetails: make([]dto.InvoiceDetailRow, 0, len(details)),
		InvoiceEvents:  make([]dto.InvoiceEventRow, 0, len(events)),
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	for _, d := range details {
		resp.InvoiceDetails = append(resp.InvoiceDetails, dto.InvoiceDetailRow{
			ID:       d.ID,
			Code:     d.Code,
			Name:     d.Name,
			Quantity: d.Quantity,
		})
	}
	for _, e := range events {
		row := dto.InvoiceEventRow{
			ID:        e.ID,
			Status:    e.Status,
			Comment:   e.Comment,
			CreatedAt: e.CreatedAt,
		}
		// Sin admin el evento lo originó el cliente; el panel muestra "Client".
		if e.AdminUserID != nil {
			row.AdminUser = &dto.ActorRef{Name: e.AdminUserName}
		}
		resp.InvoiceEvents = append(resp.InvoiceEvents, row)
	}
	return resp
}
