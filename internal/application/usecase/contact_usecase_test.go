package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

func newContactFixture(status string) (*ContactUseCase, *fakeContactRepo) {
	contacts := newFakeContactRepo()
	contacts.byID[5] = &entity.Contact{
		ID:          5,
		Name:        "Pedro Soto",
		Email:       "pedro@taller.cl",
		Status:      status,
		CountryCode: "CL",
	}
	return NewContactUseCase(contacts), contacts
}

func TestContactDerivado_SinDepartamentoNoTocaRepo(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactPendiente)

	err := uc.Derivado(context.Background(), 5, "CL", "")
	assert.ErrorIs(t, err, domain.ErrDepartamentoRequerido)
	assert.Zero(t, contacts.getCalls)
	assert.Zero(t, contacts.setStatusCalls)
}

func TestContactDerivado_GuardaDepartamento(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactPendiente)

	err := uc.Derivado(context.Background(), 5, "CL", "Logística")
	require.NoError(t, err)
	assert.Equal(t, entity.ContactDerivada, contacts.byID[5].Status)
	assert.Equal(t, "Logística", contacts.byID[5].Department)
}

func TestContactServicio_LuegoFinalizado(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactPendiente)

	require.NoError(t, uc.Servicio(context.Background(), 5, "CL"))
	assert.Equal(t, entity.ContactServicio, contacts.byID[5].Status)

	require.NoError(t, uc.Finalizado(context.Background(), 5, "CL"))
	assert.Equal(t, entity.ContactFinalizado, contacts.byID[5].Status)
}

func TestContactFinalizado_DesdePendienteDirecto(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactPendiente)

	require.NoError(t, uc.Finalizado(context.Background(), 5, "CL"))
	assert.Equal(t, entity.ContactFinalizado, contacts.byID[5].Status)
}

func TestContactTransicion_IlegalDesdeFinalizado(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactFinalizado)

	err := uc.Servicio(context.Background(), 5, "CL")
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Zero(t, contacts.setStatusCalls)
}

func TestContactTransicion_NoEncontrado(t *testing.T) {
	uc, _ := newContactFixture(entity.ContactPendiente)

	err := uc.Servicio(context.Background(), 999, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un admin de Perú no puede tocar un contacto chileno: la transición se
// rechaza con 403 y el estado queda intacto.
func TestContactTransicion_FueraDeScopeRechazada(t *testing.T) {
	uc, contacts := newContactFixture(entity.ContactPendiente)

	err := uc.Servicio(context.Background(), 5, "PE")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.ContactPendiente, contacts.byID[5].Status)
	assert.Zero(t, contacts.setStatusCalls)
}

func TestContactGetByID_FueraDeScopeRechazado(t *testing.T) {
	uc, _ := newContactFixture(entity.ContactPendiente)

	_, err := uc.GetByID(context.Background(), 5, "PE")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
