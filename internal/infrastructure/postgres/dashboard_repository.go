package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el inicio del panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetCounters totales, pendientes y enviadas en una sola pasada con FILTER.
func (r *DashboardRepo) GetCounters(ctx context.Context, countryCode string) (repository.InvoiceCounters, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE status = $1),
		       count(*) FILTER (WHERE status = $2)
		FROM invoices`
	args := []any{entity.InvoicePendiente, entity.InvoiceEnviada}
	if countryCode != "" {
		query += ` WHERE country_code = $3`
		args = append(args, countryCode)
	}
	var c repository.InvoiceCounters
	if err := r.q.QueryRow(ctx, query, args...).Scan(&c.TotalCount, &c.PendingInvoices, &c.SendInvoices); err != nil {
		return repository.InvoiceCounters{}, fmt.Errorf("get counters: %w", err)
	}
	return c, nil
}

// GetDailyAmounts cotizaciones por día dentro del rango, más los totales del
// rango completo (cantidad y monto vendido).
func (r *DashboardRepo) GetDailyAmounts(ctx context.Context, countryCode string, start, end time.Time) ([]repository.DailyAmount, int64, decimal.Decimal, error) {
	where := ` WHERE created_at >= $1 AND created_at < $2`
	args := []any{start, end}
	if countryCode != "" {
		where += ` AND country_code = $3`
		args = append(args, countryCode)
	}

	query := `
		SELECT date_trunc('day', created_at) AS day,
		       count(*),
		       COALESCE(sum(total_amount), 0)
		FROM invoices` + where + `
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, decimal.Zero, fmt.Errorf("get daily amounts: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyAmount
	for rows.Next() {
		var d repository.DailyAmount
		if err := rows.Scan(&d.CreatedAt, &d.TotalCount, &d.TotalAmountSum); err != nil {
			return nil, 0, decimal.Zero, fmt.Errorf("scan daily amount: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, decimal.Zero, err
	}

	var total int64
	var amount decimal.Decimal
	totalsQuery := `SELECT count(*), COALESCE(sum(total_amount), 0) FROM invoices` + where
	if err := r.q.QueryRow(ctx, totalsQuery, args...).Scan(&total, &amount); err != nil {
		return nil, 0, decimal.Zero, fmt.Errorf("get range totals: %w", err)
	}
	return out, total, amount, nil
}

// GetSoldCount cotizaciones VENDIDO dentro del rango.
func (r *DashboardRepo) GetSoldCount(ctx context.Context, countryCode string, start, end time.Time) (int64, error) {
	query := `SELECT count(*) FROM invoices WHERE status = $1 AND created_at >= $2 AND created_at < $3`
	args := []any{entity.InvoiceVendido, start, end}
	if countryCode != "" {
		query += ` AND country_code = $4`
		args = append(args, countryCode)
	}
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("get sold count: %w", err)
	}
	return total, nil
}
