package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

func newInvoiceFixture() (*InvoiceUseCase, *fakeInvoiceRepo, *fakeContactRepo, *fakeFileStore, *fakeMailer) {
	invoices := newFakeInvoiceRepo()
	contacts := newFakeContactRepo()
	files := &fakeFileStore{}
	mailer := &fakeMailer{}
	tx := &fakeTxRunner{invoices: invoices, contacts: contacts}
	uc := NewInvoiceUseCase(invoices, tx, files, mailer, zerolog.Nop())
	return uc, invoices, contacts, files, mailer
}

func TestInvoiceList_TotalCountEnPaginas(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.listRows = []*entity.Invoice{invoiceWithStatus(1, entity.InvoicePendiente)}
	invoices.listTotal = 25

	resp, err := uc.List(context.Background(), repository.InvoiceFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount, "25 filas con límite 10 son 3 páginas")
	assert.Len(t, resp.Cotizaciones, 1)
}

func TestInvoiceSeguimiento_SinComentarioNoTocaRepo(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()

	err := uc.Seguimiento(context.Background(), 1, 10, "CL", "")
	assert.ErrorIs(t, err, domain.ErrComentarioRequerido)
	assert.Zero(t, invoices.getCalls)
	assert.Zero(t, invoices.setStatusCalls)
}

func TestInvoiceVendido_MontoNoPositivoRechazado(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()

	err := uc.Vendido(context.Background(), 1, 10, "CL", "ok", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMontoRequerido)

	err = uc.Vendido(context.Background(), 1, 10, "CL", "ok", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrMontoRequerido)
	assert.Zero(t, invoices.setStatusCalls)
}

func TestInvoicePerdido_SinMotivoRechazado(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()

	err := uc.Perdido(context.Background(), 1, 10, "CL", "")
	assert.ErrorIs(t, err, domain.ErrMotivoRequerido)
	assert.Zero(t, invoices.getCalls)
}

func TestInvoiceUpload_SinArchivoRechazado(t *testing.T) {
	uc, _, _, files, _ := newInvoiceFixture()

	err := uc.Upload(context.Background(), 1, 10, "CL", "", "", nil)
	assert.ErrorIs(t, err, domain.ErrArchivoRequerido)
	assert.Empty(t, files.saved)
}

func TestInvoiceUpload_GuardaURLYNotifica(t *testing.T) {
	uc, invoices, _, files, mailer := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoicePendiente)

	err := uc.Upload(context.Background(), 1, 10, "CL", "primer envío", "cotizacion.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	inv := invoices.byID[10]
	assert.Equal(t, entity.InvoiceEnviada, inv.Status)
	assert.Contains(t, inv.InvoiceURL, "cotizacion.pdf")
	assert.Len(t, files.saved, 1)
	assert.Equal(t, []string{"carlos@empresa.cl"}, mailer.sent)

	require.Len(t, invoices.events, 1)
	assert.Equal(t, entity.InvoiceEnviada, invoices.events[0].Status)
	require.NotNil(t, invoices.events[0].AdminUserID)
	assert.Equal(t, int64(1), *invoices.events[0].AdminUserID)
}

// El reenvío desde ENVIADA es válido: cada envío suma su evento al historial.
func TestInvoiceUpload_ReenvioDesdeEnviada(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoiceEnviada)

	err := uc.Upload(context.Background(), 1, 10, "CL", "versión corregida", "v2.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceEnviada, invoices.byID[10].Status)
	assert.Len(t, invoices.events, 1)
}

func TestInvoiceVendido_GuardaMontoYEvento(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoiceSeguimiento)

	monto := decimal.RequireFromString("1250000.50")
	err := uc.Vendido(context.Background(), 2, 10, "CL", "orden de compra recibida", monto)
	require.NoError(t, err)

	inv := invoices.byID[10]
	assert.Equal(t, entity.InvoiceVendido, inv.Status)
	assert.True(t, inv.TotalAmount.Equal(monto))
	require.Len(t, invoices.events, 1)
	assert.Equal(t, "orden de compra recibida", invoices.events[0].Comment)
}

func TestInvoiceTransicion_IlegalDesdeTerminal(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoiceVendido)

	err := uc.Seguimiento(context.Background(), 1, 10, "CL", "no debería")
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Zero(t, invoices.setStatusCalls)
	assert.Empty(t, invoices.events)
}

func TestInvoiceTransicion_NoEncontrada(t *testing.T) {
	uc, _, _, _, _ := newInvoiceFixture()

	err := uc.Derivado(context.Background(), 1, 999, "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una cotización chilena es invisible para el scope PE: ni la transición
// ni el detalle pasan, y no se escribe nada.
func TestInvoiceTransicion_FueraDeScopeRechazada(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoicePendiente)

	err := uc.Seguimiento(context.Background(), 1, 10, "PE", "avance")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.InvoicePendiente, invoices.byID[10].Status)
	assert.Zero(t, invoices.setStatusCalls)
	assert.Empty(t, invoices.events)

	_, err = uc.GetByID(context.Background(), 10, "PE")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Si la transición a ENVIADA no es legal, el documento no llega al storage:
// el rechazo no deja archivos huérfanos.
func TestInvoiceUpload_TransicionIlegalNoGuardaArchivo(t *testing.T) {
	uc, invoices, _, files, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoiceVendido)

	err := uc.Upload(context.Background(), 1, 10, "CL", "tarde", "doc.pdf", strings.NewReader("%PDF-1.4"))
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Empty(t, files.saved)
	assert.Equal(t, entity.InvoiceVendido, invoices.byID[10].Status)
}

func TestCreateFromContact_ContactoPasaACotizacion(t *testing.T) {
	uc, invoices, contacts, _, _ := newInvoiceFixture()
	userID := int64(55)
	contacts.byID[3] = &entity.Contact{
		ID:          3,
		UserID:      &userID,
		Name:        "María Pérez",
		Email:       "maria@cliente.pe",
		Status:      entity.ContactPendiente,
		CountryCode: "PE",
	}

	resp, err := uc.CreateFromContact(context.Background(), 1, "PE", dto.InvoiceFromContactRequest{ContactID: 3})
	require.NoError(t, err)

	assert.Equal(t, entity.ContactCotizacion, contacts.byID[3].Status)
	assert.Equal(t, entity.InvoicePendiente, resp.StatusR.Name)
	assert.Equal(t, "PE", resp.CountryCode)
	assert.Equal(t, 1, invoices.createCalls)
	require.Len(t, invoices.events, 1)
}

// Si el contacto ya no está PENDIENTE no se crea nada: la validación corre
// antes de cualquier escritura.
func TestCreateFromContact_ContactoNoPendienteNoEscribe(t *testing.T) {
	uc, invoices, contacts, _, _ := newInvoiceFixture()
	contacts.byID[3] = &entity.Contact{ID: 3, Status: entity.ContactFinalizado}

	_, err := uc.CreateFromContact(context.Background(), 1, "", dto.InvoiceFromContactRequest{ContactID: 3})
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Zero(t, invoices.createCalls)
	assert.Zero(t, contacts.setStatusCalls)
}

func TestInvoiceCreate_SinNombreNiEmailRechazada(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()

	_, err := uc.Create(context.Background(), 1, "CL", dto.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, invoices.createCalls)
}

func TestInvoiceGetByID_EventoDelClienteSinAdmin(t *testing.T) {
	uc, invoices, _, _, _ := newInvoiceFixture()
	invoices.byID[10] = invoiceWithStatus(10, entity.InvoicePendiente)
	invoices.events = append(invoices.events, &entity.InvoiceEvent{
		InvoiceID: 10,
		Status:    entity.InvoicePendiente,
	})

	resp, err := uc.GetByID(context.Background(), 10, "CL")
	require.NoError(t, err)
	require.Len(t, resp.InvoiceEvents, 1)
	assert.Nil(t, resp.InvoiceEvents[0].AdminUser, "evento sin admin = creado por el cliente")
}
