package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WebUserRow cliente del sitio público.
type WebUserRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// ListClientsResponse página de clientes; TotalPages en páginas.
type ListClientsResponse struct {
	Users      []WebUserRow `json:"users"`
	TotalPages int64        `json:"totalPages"`
}

// HistoryInvoice cotización dentro del historial de un cliente.
type HistoryInvoice struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	User        RequesterInfo   `json:"user"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// HistoryContact contacto dentro del historial de un cliente.
type HistoryContact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientHistoryResponse historial completo (cotizaciones + contactos).
type ClientHistoryResponse struct {
	Invoices []HistoryInvoice `json:"invoices"`
	Contacts []HistoryContact `json:"contacts"`
}
