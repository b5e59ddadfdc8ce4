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

var _ repository.WebUserRepository = (*WebUserRepo)(nil)

// WebUserRepo lectura de clientes del sitio público sobre PostgreSQL. El panel
// nunca escribe esta tabla; la llena el sitio.
type WebUserRepo struct {
	q Querier
}

// NewWebUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWebUserRepository(q Querier) *WebUserRepo {
	return &WebUserRepo{q: q}
}

const webUserColumns = `id, name, email, phone, company, country_code, created_at`

func scanWebUser(row pgx.Row) (*entity.WebUser, error) {
	var u entity.WebUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Company, &u.CountryCode, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene un cliente; nil si no existe.
func (r *WebUserRepo) GetByID(ctx context.Context, id int64) (*entity.WebUser, error) {
	u, err := scanWebUser(r.q.QueryRow(ctx, `SELECT `+webUserColumns+` FROM web_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get web user: %w", err)
	}
	return u, nil
}

// List página de clientes según filtro, más el total de filas que matchean.
func (r *WebUserRepo) List(ctx context.Context, f repository.WebUserFilter) ([]*entity.WebUser, int64, error) {
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
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM web_users"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count web users: %w", err)
	}

	order := "DESC"
	if f.IDAsc {
		order = "ASC"
	}
	args = append(args, f.Limit, f.Page*f.Limit)
	query := fmt.Sprintf("SELECT %s FROM web_users%s ORDER BY id %s LIMIT $%d OFFSET $%d",
		webUserColumns, where, order, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list web users: %w", err)
	}
	defer rows.Close()

	var out []*entity.WebUser
	for rows.Next() {
		u, err := scanWebUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan web user: %w", err)
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

// SearchByEmail prefijo de email para el combobox de nueva cotización.
func (r *WebUserRepo) SearchByEmail(ctx context.Context, countryCode, email string, limit int) ([]*entity.WebUser, error) {
	query := `SELECT ` + webUserColumns + ` FROM web_users WHERE email ILIKE $1`
	args := []any{email + "%"}
	if countryCode != "" {
		args = append(args, countryCode)
		query += ` AND country_code = $2`
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY email LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search web users: %w", err)
	}
	defer rows.Close()

	var out []*entity.WebUser
	for rows.Next() {
		u, err := scanWebUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan web user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
