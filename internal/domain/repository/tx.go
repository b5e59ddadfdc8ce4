package repository

import "context"

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que recibe
// fn escriben sobre esa transacción; si fn devuelve error se hace rollback.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(invoices InvoiceRepository, contacts ContactRepository) error) error
}
