package entity

import "time"

// Estados de un contacto.
const (
	ContactPendiente  = "PENDIENTE"
	ContactCotizacion = "COTIZACIÓN"
	ContactDerivada   = "DERIVADA"
	ContactServicio   = "SERVICIO"
	ContactFinalizado = "FINALIZADO"
)

var contactStatusIDs = map[string]int{
	ContactPendiente:  1,
	ContactCotizacion: 2,
	ContactDerivada:   3,
	ContactServicio:   4,
	ContactFinalizado: 5,
}

// ContactStatusID devuelve el id del estado (0 si no existe).
func ContactStatusID(status string) int {
	return contactStatusIDs[status]
}

// Departamentos a los que puede derivarse un contacto. "Otro" admite texto libre.
var ContactDepartments = []string{
	"Gerencia Comercial",
	"Compras",
	"Recursos Humanos",
	"Comex",
	"Logística",
}

// Contact mensaje entrante triado a cotización, servicio técnico o derivación.
type Contact struct {
	ID          int64
	UserID      *int64
	Name        string
	Email       string
	Phone       string
	Company     string
	Message     string
	Equipment   string // solo solicitudes de servicio técnico
	Status      string
	Department  string // área a la que se derivó, si aplica
	CountryCode string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
