package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// Fakes en memoria para los tests de casos de uso. Cuentan llamadas para poder
// asegurar que una validación fallida no toca la persistencia.

type fakeInvoiceRepo struct {
	byID      map[int64]*entity.Invoice
	listRows  []*entity.Invoice
	listTotal int64
	events    []*entity.InvoiceEvent
	nextID    int64

	setStatusCalls int
	createCalls    int
	getCalls       int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: map[int64]*entity.Invoice{}, nextID: 100}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	f.createCalls++
	f.nextID++
	inv.ID = f.nextID
	f.byID[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	f.getCalls++
	return f.byID[id], nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, _ repository.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	return f.listRows, f.listTotal, nil
}

func (f *fakeInvoiceRepo) ListByWebUser(ctx context.Context, userID int64, countryCode string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.byID {
		if inv.UserID != nil && *inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) SetStatus(ctx context.Context, inv *entity.Invoice) error {
	f.setStatusCalls++
	f.byID[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetDetails(ctx context.Context, invoiceID int64) ([]*entity.InvoiceDetail, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) GetEvents(ctx context.Context, invoiceID int64) ([]*entity.InvoiceEvent, error) {
	var out []*entity.InvoiceEvent
	for _, e := range f.events {
		if e.InvoiceID == invoiceID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) AddEvent(ctx context.Context, e *entity.InvoiceEvent) error {
	f.events = append(f.events, e)
	return nil
}

type fakeContactRepo struct {
	byID map[int64]*entity.Contact

	setStatusCalls int
	getCalls       int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: map[int64]*entity.Contact{}}
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	f.getCalls++
	return f.byID[id], nil
}

func (f *fakeContactRepo) List(ctx context.Context, _ repository.ContactFilter) ([]*entity.Contact, int64, error) {
	var out []*entity.Contact
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeContactRepo) ListByEmail(ctx context.Context, email, countryCode string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range f.byID {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) SetStatus(ctx context.Context, c *entity.Contact) error {
	f.setStatusCalls++
	f.byID[c.ID] = c
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes; no hay rollback, los
// tests de atomicidad se apoyan en que la validación corre antes de escribir.
type fakeTxRunner struct {
	invoices *fakeInvoiceRepo
	contacts *fakeContactRepo
}

func (f *fakeTxRunner) WithinTx(ctx context.Context, fn func(repository.InvoiceRepository, repository.ContactRepository) error) error {
	return fn(f.invoices, f.contacts)
}

type fakeFileStore struct {
	saved []string
}

func (f *fakeFileStore) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if r != nil {
		_, _ = io.Copy(io.Discard, r)
	}
	f.saved = append(f.saved, folder+"/"+filename)
	return "https://files.test/" + folder + "/" + filename, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

func invoiceWithStatus(id int64, status string) *entity.Invoice {
	return &entity.Invoice{
		ID:          id,
		Name:        "Carlos Rojas",
		Email:       "carlos@empresa.cl",
		Phone:       "+56 9 1234 5678",
		Company:     "Empresa SpA",
		Status:      status,
		TotalAmount: decimal.Zero,
		CountryCode: "CL",
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}
