package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL
// (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, user_id, name, email, phone, company, message, status, total_amount, invoice_url, country_code, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.Name, &inv.Email, &inv.Phone, &inv.Company,
		&inv.Message, &inv.Status, &inv.TotalAmount, &inv.InvoiceURL,
		&inv.CountryCode, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste una cotización nueva y completa su ID.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (user_id, name, email, phone, company, message, status, total_amount, invoice_url, country_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inv.UserID, inv.Name, inv.Email, inv.Phone, inv.Company, inv.Message,
		inv.Status, inv.TotalAmount, inv.InvoiceURL, inv.CountryCode,
		inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// buildInvoiceWhere arma el WHERE compartido por el listado y su count.
func buildInvoiceWhere(f repository.InvoiceFilter) (string, []any) {
	var conds []string
	var args []any
	if f.CountryCode != "" {
		args = append(args, f.CountryCode)
		conds = append(conds, "country_code = $"+strconv.Itoa(len(args)))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conds = append(conds, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List página de cotizaciones según filtro, más el total de filas que matchean.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	where, args := buildInvoiceWhere(f)

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM invoices"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	order := "DESC"
	if f.IDAsc {
		order = "ASC"
	}
	args = append(args, f.Limit, f.Page*f.Limit)
	query := fmt.Sprintf("SELECT %s FROM invoices%s ORDER BY id %s LIMIT $%d OFFSET $%d",
		invoiceColumns, where, order, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, total, rows.Err()
}

// ListByWebUser cotizaciones de un cliente, más recientes primero.
func (r *InvoiceRepo) ListByWebUser(ctx context.Context, userID int64, countryCode string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1`
	args := []any{userID}
	if countryCode != "" {
		query += ` AND country_code = $2`
		args = append(args, countryCode)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices by user: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// SetStatus persiste estado, monto y URL del documento.
func (r *InvoiceRepo) SetStatus(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET status = $2, total_amount = $3, invoice_url = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.Status, inv.TotalAmount, inv.InvoiceURL, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// GetDetails líneas de la solicitud.
func (r *InvoiceRepo) GetDetails(ctx context.Context, invoiceID int64) ([]*entity.InvoiceDetail, error) {
	query := `SELECT id, invoice_id, code, name, quantity FROM invoice_details WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice details: %w", err)
	}
	defer rows.Close()

	var out []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.Code, &d.Name, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// GetEvents historial cronológico con el nombre del admin resuelto por JOIN.
func (r *InvoiceRepo) GetEvents(ctx context.Context, invoiceID int64) ([]*entity.InvoiceEvent, error) {
	query := `
		SELECT e.id, e.invoice_id, e.status, e.comment, e.admin_user_id, COALESCE(u.name, ''), e.created_at
		FROM invoice_events e
		LEFT JOIN admin_users u ON u.id = e.admin_user_id
		WHERE e.invoice_id = $1
		ORDER BY e.created_at, e.id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice events: %w", err)
	}
	defer rows.Close()

	var out []*entity.InvoiceEvent
	for rows.Next() {
		var e entity.InvoiceEvent
		if err := rows.Scan(&e.ID, &e.InvoiceID, &e.Status, &e.Comment, &e.AdminUserID, &e.AdminUserName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice event: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// AddEvent agrega una entrada al historial (append-only).
func (r *InvoiceRepo) AddEvent(ctx context.Context, e *entity.InvoiceEvent) error {
	query := `
		INSERT INTO invoice_events (invoice_id, status, comment, admin_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, e.InvoiceID, e.Status, e.Comment, e.AdminUserID, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert invoice event: %w", err)
	}
	return nil
}
