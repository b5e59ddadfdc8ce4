package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/workflow"
)

// La tabla de cotizaciones solo permite los destinos enumerados para cada
// estado de origen; todo lo demás se rechaza.
func TestInvoiceTransitions_TablaCompleta(t *testing.T) {
	casos := []struct {
		desde     string
		permitido []string
	}{
		{entity.InvoicePendiente, []string{entity.InvoiceEnviada, entity.InvoiceDerivada}},
		{entity.InvoiceEnviada, []string{entity.InvoiceEnviada, entity.InvoiceSeguimiento, entity.InvoiceVendido, entity.InvoicePerdida}},
		{entity.InvoiceSeguimiento, []string{entity.InvoiceEnviada, entity.InvoiceSeguimiento, entity.InvoiceVendido, entity.InvoicePerdida}},
		{entity.InvoiceVendido, nil},
		{entity.InvoicePerdida, nil},
		{entity.InvoiceDerivada, nil},
	}

	todos := []string{
		entity.InvoicePendiente, entity.InvoiceEnviada, entity.InvoiceSeguimiento,
		entity.InvoiceVendido, entity.InvoicePerdida, entity.InvoiceDerivada,
	}

	for _, c := range casos {
		permitidos := map[string]bool{}
		for _, p := range c.permitido {
			permitidos[p] = true
		}
		for _, destino := range todos {
			got := workflow.CanInvoiceTransition(c.desde, destino)
			assert.Equal(t, permitidos[destino], got,
				"transición %s → %s", c.desde, destino)
		}
	}
}

func TestInvoiceTransitions_EstadoDesconocidoRechazado(t *testing.T) {
	assert.False(t, workflow.CanInvoiceTransition("INVENTADO", entity.InvoiceEnviada))
	assert.False(t, workflow.CanInvoiceTransition("", entity.InvoiceEnviada))
}

// Los estados terminales no ofrecen selector.
func TestInvoiceNextStates_TerminalesSinOpciones(t *testing.T) {
	for _, s := range []string{entity.InvoiceVendido, entity.InvoicePerdida, entity.InvoiceDerivada} {
		assert.True(t, workflow.InvoiceTerminal(s), "estado %s debe ser terminal", s)
		assert.Empty(t, workflow.InvoiceNextStates(s, entity.RoleAdminChile))
	}
}

// Los roles de solo lectura (4 y 5) nunca ven transiciones, en ningún estado.
func TestInvoiceNextStates_RolSoloLecturaSinOpciones(t *testing.T) {
	for _, rol := range []int{entity.RoleUserChile, entity.RoleUserPeru} {
		assert.Empty(t, workflow.InvoiceNextStates(entity.InvoicePendiente, rol))
		assert.Empty(t, workflow.InvoiceNextStates(entity.InvoiceEnviada, rol))
	}
}

func TestInvoiceNextStates_OrdenEstable(t *testing.T) {
	got := workflow.InvoiceNextStates(entity.InvoiceEnviada, entity.RoleSuperAdmin)
	assert.Equal(t, []string{
		entity.InvoiceEnviada,
		entity.InvoiceSeguimiento,
		entity.InvoiceVendido,
		entity.InvoicePerdida,
	}, got)
}

func TestContactTransitions_DesdePendiente(t *testing.T) {
	for _, destino := range []string{
		entity.ContactCotizacion, entity.ContactServicio,
		entity.ContactDerivada, entity.ContactFinalizado,
	} {
		assert.True(t, workflow.CanContactTransition(entity.ContactPendiente, destino),
			"PENDIENTE → %s debe permitirse", destino)
	}
	assert.False(t, workflow.CanContactTransition(entity.ContactPendiente, entity.ContactPendiente))
}

func TestContactTransitions_SubFlujoServicio(t *testing.T) {
	assert.True(t, workflow.CanContactTransition(entity.ContactServicio, entity.ContactFinalizado))
	assert.False(t, workflow.CanContactTransition(entity.ContactServicio, entity.ContactCotizacion))
	assert.False(t, workflow.CanContactTransition(entity.ContactFinalizado, entity.ContactServicio))
}

func TestContactTransitions_TerminalesCerrados(t *testing.T) {
	for _, s := range []string{entity.ContactCotizacion, entity.ContactDerivada, entity.ContactFinalizado} {
		assert.Empty(t, workflow.ContactNextStates(s, entity.RoleAdminPeru), "estado %s", s)
	}
}

func TestContactNextStates_RolSoloLectura(t *testing.T) {
	assert.Empty(t, workflow.ContactNextStates(entity.ContactPendiente, entity.RoleUserPeru))
}
