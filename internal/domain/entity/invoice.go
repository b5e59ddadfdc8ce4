package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización. Los nombres son los que viajan por la API y los
// que el panel pinta; no traducir.
const (
	InvoicePendiente   = "PENDIENTE"
	InvoiceEnviada     = "ENVIADA"
	InvoiceSeguimiento = "SEGUIMIENTO"
	InvoiceVendido     = "VENDIDO"
	InvoicePerdida     = "PERDIDA"
	InvoiceDerivada    = "DERIVADA"
)

// invoiceStatusIDs ids estables por estado (statusR.id en las respuestas).
var invoiceStatusIDs = map[string]int{
	InvoicePendiente:   1,
	InvoiceEnviada:     2,
	InvoiceSeguimiento: 3,
	InvoiceVendido:     4,
	InvoicePerdida:     5,
	InvoiceDerivada:    6,
}

// InvoiceStatusID devuelve el id del estado (0 si no existe).
func InvoiceStatusID(status string) int {
	return invoiceStatusIDs[status]
}

// Invoice una cotización. El solicitante puede ser un usuario web registrado
// (UserID) o datos cargados a mano desde el panel; en ambos casos los campos
// de contacto quedan denormalizados en la cotización.
type Invoice struct {
	ID          int64
	UserID      *int64 // usuario web vinculado, si existe
	Name        string
	Email       string
	Phone       string
	Company     string
	Message     string
	Status      string
	TotalAmount decimal.Decimal // solo con estado VENDIDO
	InvoiceURL  string          // documento subido al pasar a ENVIADA
	CountryCode string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceDetail línea de la solicitud (código, producto, cantidad).
type InvoiceDetail struct {
	ID        int64
	InvoiceID int64
	Code      string
	Name      string
	Quantity  int
}

// InvoiceEvent entrada del historial, append-only. AdminUserID nil significa
// que el evento lo originó el cliente (creación pública).
type InvoiceEvent struct {
	ID            int64
	InvoiceID     int64
	Status        string
	Comment       string
	AdminUserID   *int64
	AdminUserName string // resuelto en la lectura; vacío = cliente
	CreatedAt     time.Time
}
