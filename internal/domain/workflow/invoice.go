// Package workflow define las máquinas de estados de cotizaciones y contactos.
// Las tablas son la única fuente de verdad: los usecases consultan aquí antes
// de tocar la base, y el panel arma sus selectores con NextStates.
package workflow

import "github.com/fromm-latam/panel-admin-api/internal/domain/entity"

// Transiciones permitidas por estado. Reenviar (ENVIADA→ENVIADA) y el
// seguimiento adicional (SEGUIMIENTO→SEGUIMIENTO) son reentradas válidas que
// solo agregan un evento al historial.
var invoiceTransitions = map[string]map[string]bool{
	entity.InvoicePendiente: {
		entity.InvoiceEnviada:  true,
		entity.InvoiceDerivada: true,
	},
	entity.InvoiceEnviada: {
		entity.InvoiceEnviada:     true,
		entity.InvoiceSeguimiento: true,
		entity.InvoiceVendido:     true,
		entity.InvoicePerdida:     true,
	},
	entity.InvoiceSeguimiento: {
		entity.InvoiceEnviada:     true,
		entity.InvoiceSeguimiento: true,
		entity.InvoiceVendido:     true,
		entity.InvoicePerdida:     true,
	},
	entity.InvoiceVendido:  {},
	entity.InvoicePerdida:  {},
	entity.InvoiceDerivada: {},
}

// CanInvoiceTransition indica si una cotización puede pasar de current a next.
func CanInvoiceTransition(current, next string) bool {
	nexts, ok := invoiceTransitions[current]
	if !ok {
		return false
	}
	return nexts[next]
}

// orden fijo para que el selector del panel sea estable.
var invoiceStatusOrder = []string{
	entity.InvoiceEnviada,
	entity.InvoiceSeguimiento,
	entity.InvoiceVendido,
	entity.InvoicePerdida,
	entity.InvoiceDerivada,
}

// InvoiceNextStates estados alcanzables desde current, en el orden del panel.
// Un rol de solo lectura no alcanza ninguno.
func InvoiceNextStates(current string, roleID int) []string {
	if entity.RoleSoloLectura(roleID) {
		return nil
	}
	nexts := invoiceTransitions[current]
	out := make([]string, 0, len(nexts))
	for _, s := range invoiceStatusOrder {
		if nexts[s] {
			out = append(out, s)
		}
	}
	return out
}

// InvoiceTerminal indica si el estado no ofrece más transiciones.
func InvoiceTerminal(status string) bool {
	return len(invoiceTransitions[status]) == 0
}
