package usecase

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// ClientUseCase lecturas sobre los clientes del sitio público: listado,
// búsqueda para el combobox y el historial combinado.
type ClientUseCase struct {
	webUsers repository.WebUserRepository
	invoices repository.InvoiceRepository
	contacts repository.ContactRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(webUsers repository.WebUserRepository, invoices repository.InvoiceRepository, contacts repository.ContactRepository) *ClientUseCase {
	return &ClientUseCase{webUsers: webUsers, invoices: invoices, contacts: contacts}
}

// List página de clientes del scope.
func (uc *ClientUseCase) List(ctx context.Context, f repository.WebUserFilter) (*dto.ListClientsResponse, error) {
	rows, total, err := uc.webUsers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WebUserRow, 0, len(rows))
	for _, u := range rows {
		out = append(out, dto.WebUserRow{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			Company: u.Company,
		})
	}
	return &dto.ListClientsResponse{Users: out, TotalPages: pageCount(total, f.Limit)}, nil
}

// SearchByEmail prefijo de email para el combobox de nueva cotización.
func (uc *ClientUseCase) SearchByEmail(ctx context.Context, countryCode, email string, limit int) ([]dto.WebUserRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.webUsers.SearchByEmail(ctx, countryCode, email, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WebUserRow, 0, len(rows))
	for _, u := range rows {
		out = append(out, dto.WebUserRow{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			Company: u.Company,
		})
	}
	return out, nil
}

// History historial completo de un cliente: sus cotizaciones y sus contactos.
func (uc *ClientUseCase) History(ctx context.Context, userID int64, countryCode string) (*dto.ClientHistoryResponse, error) {
	user, err := uc.webUsers.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if countryCode != "" && user.CountryCode != countryCode {
		return nil, domain.ErrForbidden
	}
	invoices, err := uc.invoices.ListByWebUser(ctx, userID, countryCode)
	if err != nil {
		return nil, err
	}
	contacts, err := uc.contacts.ListByEmail(ctx, user.Email, countryCode)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClientHistoryResponse{
		Invoices: make([]dto.HistoryInvoice, 0, len(invoices)),
		Contacts: make([]dto.HistoryContact, 0, len(contacts)),
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, dto.HistoryInvoice{
			ID:          inv.ID,
			Status:      inv.Status,
			TotalAmount: inv.TotalAmount,
			User: dto.RequesterInfo{
				Name:    inv.Name,
				Email:   inv.Email,
				Phone:   inv.Phone,
				Company: inv.Company,
			},
			CreatedAt: inv.CreatedAt,
		})
	}
	for _, c := range contacts {
		resp.Contacts = append(resp.Contacts, dto.HistoryContact{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp, nil
}
