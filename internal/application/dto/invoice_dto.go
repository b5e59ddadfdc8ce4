package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow fila del listado de cotizaciones.
type InvoiceRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListInvoicesResponse página de cotizaciones. TotalCount es la cantidad de
// páginas, no de filas: es lo que el paginador del panel consume.
type ListInvoicesResponse struct {
	Cotizaciones []InvoiceRow `json:"cotizaciones"`
	TotalCount   int64        `json:"totalCount"`
}

// RequesterInfo datos del solicitante embebidos en el detalle.
type RequesterInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// InvoiceDetailRow línea de la solicitud.
type InvoiceDetailRow struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ActorRef autor de un evento del historial; nil = el cliente.
type ActorRef struct {
	Name string `json:"name"`
}

// InvoiceEventRow entrada del historial.
type InvoiceEventRow struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Comment   string    `json:"comment"`
	AdminUser *ActorRef `json:"adminUser"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvoiceResponse detalle completo de una cotización.
type InvoiceResponse struct {
	ID             int64              `json:"id"`
	StatusR        StatusRef          `json:"statusR"`
	Message        string             `json:"message"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	InvoiceURL     string             `json:"invoiceURL"`
	CountryCode    string             `json:"countryCode"`
	User           RequesterInfo      `json:"user"`
	InvoiceDetails []InvoiceDetailRow `json:"invoiceDetails"`
	InvoiceEvents  []InvoiceEventRow  `json:"invoiceEvents"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CreateInvoiceRequest alta manual desde el panel. UserID vincula un cliente
// del combobox; nil cuando los datos se cargan a mano.
type CreateInvoiceRequest struct {
	UserID  *int64 `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// InvoiceFromContactRequest crea una cotización a partir de un contacto.
type InvoiceFromContactRequest struct {
	Data      CreateInvoiceRequest `json:"data"`
	ContactID int64                `json:"contactId"`
}

// TransitionRequest cuerpo común de seguimiento/derivado/perdido.
type TransitionRequest struct {
	ID      int64  `json:"id"`
	Comment string `json:"comment"`
}

// VendidoRequest cierre de venta; TotalAmount debe ser positivo.
type VendidoRequest struct {
	ID          int64           `json:"id"`
	Comment     string          `json:"comment"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
