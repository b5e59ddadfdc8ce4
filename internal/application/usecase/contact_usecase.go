package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
	"github.com/fromm-latam/panel-admin-api/internal/domain/workflow"
)

// ContactUseCase triaje de contactos: servicio técnico, derivación a un área
// o cierre. El pase a COTIZACIÓN lo hace InvoiceUseCase.CreateFromContact.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// List página de contactos del scope.
func (uc *ContactUseCase) List(ctx context.Context, f repository.ContactFilter) (*dto.ListContactsResponse, error) {
	rows, total, err := uc.contacts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactRow, 0, len(rows))
	for _, c := range rows {
		out = append(out, dto.ContactRow{
			ID:        c.ID,
			Name:      c.Name,
			Company:   c.Company,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.ListContactsResponse{Contactos: out, TotalCount: pageCount(total, f.Limit)}, nil
}

// GetByID detalle de un contacto. Fuera del scope de país responde
// ErrForbidden.
func (uc *ContactUseCase) GetByID(ctx context.Context, id int64, countryCode string) (*dto.ContactResponse, error) {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !inScope(countryCode, c.CountryCode) {
		return nil, domain.ErrForbidden
	}
	return toContactResponse(c), nil
}

// Servicio marca el contacto como solicitud de servicio técnico.
func (uc *ContactUseCase) Servicio(ctx context.Context, id int64, countryCode string) error {
	return uc.transition(ctx, id, countryCode, entity.ContactServicio, "")
}

// Derivado deriva el contacto a un área interna; el área es obligatoria.
func (uc *ContactUseCase) Derivado(ctx context.Context, id int64, countryCode, department string) error {
	if department == "" {
		return domain.ErrDepartamentoRequerido
	}
	return uc.transition(ctx, id, countryCode, entity.ContactDerivada, department)
}

// Finalizado cierra el contacto.
func (uc *ContactUseCase) Finalizado(ctx context.Context, id int64, countryCode string) error {
	return uc.transition(ctx, id, countryCode, entity.ContactFinalizado, "")
}

func (uc *ContactUseCase) transition(ctx context.Context, id int64, countryCode, next, department string) error {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !inScope(countryCode, c.CountryCode) {
		return domain.ErrForbidden
	}
	if !workflow.CanContactTransition(c.Status, next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrTransicionInvalida, c.Status, next)
	}
	c.Status = next
	if department != "" {
		c.Department = department
	}
	c.UpdatedAt = time.Now()
	return uc.contacts.SetStatus(ctx, c)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	resp := &dto.ContactResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Company:    c.Company,
		Message:    c.Message,
		Equipment:  c.Equipment,
		Status:     dto.StatusRef{ID: entity.ContactStatusID(c.Status), Name: c.Status},
		Department: c.Department,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.UserID != nil {
		resp.User = &dto.ContactUserRef{ID: *c.UserID, CountryCode: c.CountryCode}
	}
	return resp
}
