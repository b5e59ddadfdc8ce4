package workflow

import "github.com/fromm-latam/panel-admin-api/internal/domain/entity"

// Transiciones de contactos. FINALIZADO cierra el sub-flujo de servicio
// técnico: se alcanza desde PENDIENTE (ticket directo) o desde SERVICIO.
var contactTransitions = map[string]map[string]bool{
	entity.ContactPendiente: {
		entity.ContactCotizacion: true,
		entity.ContactServicio:   true,
		entity.ContactDerivada:   true,
		entity.ContactFinalizado: true,
	},
	entity.ContactServicio: {
		entity.ContactFinalizado: true,
	},
	entity.ContactCotizacion: {},
	entity.ContactDerivada:   {},
	entity.ContactFinalizado: {},
}

// CanContactTransition indica si un contacto puede pasar de current a next.
func CanContactTransition(current, next string) bool {
	nexts, ok := contactTransitions[current]
	if !ok {
		return false
	}
	return nexts[next]
}

var contactStatusOrder = []string{
	entity.ContactCotizacion,
	entity.ContactServicio,
	entity.ContactDerivada,
	entity.ContactFinalizado,
}

// ContactNextStates estados alcanzables desde current, filtrados por rol.
func ContactNextStates(current string, roleID int) []string {
	if entity.RoleSoloLectura(roleID) {
		return nil
	}
	nexts := contactTransitions[current]
	out := make([]string, 0, len(nexts))
	for _, s := range contactStatusOrder {
		if nexts[s] {
			out = append(out, s)
		}
	}
	return out
}
