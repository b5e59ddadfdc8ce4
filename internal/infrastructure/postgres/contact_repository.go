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

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL
// (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const contactColumns = `id, user_id, name, email, phone, company, message, equipment, status, department, country_code, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Message,
		&c.Equipment, &c.Status, &c.Department, &c.CountryCode, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene un contacto; nil si no existe.
func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	c, err := scanContact(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// List página de contactos según filtro, más el total de filas que matchean.
func (r *ContactRepo) List(ctx context.Context, f repository.ContactFilter) ([]*entity.Contact, int64, error) {
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
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM contacts"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	order := "DESC"
	if f.IDAsc {
		order = "ASC"
	}
	args = append(args, f.Limit, f.Page*f.Limit)
	query := fmt.Sprintf("SELECT %s FROM contacts%s ORDER BY id %s LIMIT $%d OFFSET $%d",
		contactColumns, where, order, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// ListByEmail contactos de un cliente por email, dentro del scope de país.
func (r *ContactRepo) ListByEmail(ctx context.Context, email, countryCode string) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = $1`
	args := []any{email}
	if countryCode != "" {
		query += ` AND country_code = $2`
		args = append(args, countryCode)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts by email: %w", err)
	}
	defer rows.Close()

	var out []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetStatus persiste estado y departamento de derivación.
func (r *ContactRepo) SetStatus(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts SET status = $2, department = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Status, c.Department, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return nil
}
