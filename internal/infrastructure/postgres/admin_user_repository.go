package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

var _ repository.AdminUserRepository = (*AdminUserRepo)(nil)

// AdminUserRepo implementación del puerto AdminUserRepository sobre PostgreSQL.
type AdminUserRepo struct {
	q Querier
}

// NewAdminUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminUserRepository(q Querier) *AdminUserRepo {
	return &AdminUserRepo{q: q}
}

const adminUserColumns = `id, name, email, password_hash, role_id, is_active, created_at, updated_at`

func scanAdminUser(row pgx.Row) (*entity.AdminUser, error) {
	var u entity.AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario nuevo y completa su ID.
func (r *AdminUserRepo) Create(ctx context.Context, u *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (name, email, password_hash, role_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, u.RoleID, u.IsActive, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario; nil si no existe.
func (r *AdminUserRepo) GetByID(ctx context.Context, id int64) (*entity.AdminUser, error) {
	u, err := scanAdminUser(r.q.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	u, err := scanAdminUser(r.q.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user by email: %w", err)
	}
	return u, nil
}

// List todos los usuarios del panel, ordenados por id.
func (r *AdminUserRepo) List(ctx context.Context) ([]*entity.AdminUser, error) {
	rows, err := r.q.Query(ctx, `SELECT `+adminUserColumns+` FROM admin_users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	var out []*entity.AdminUser
	for rows.Next() {
		u, err := scanAdminUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update persiste nombre, email, hash y rol.
func (r *AdminUserRepo) Update(ctx context.Context, u *entity.AdminUser) error {
	query := `
		UPDATE admin_users SET name = $2, email = $3, password_hash = $4, role_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update admin user: %w", err)
	}
	return nil
}

// SetActive habilita o inhabilita un usuario.
func (r *AdminUserRepo) SetActive(ctx context.Context, id int64, isActive bool) error {
	_, err := r.q.Exec(ctx, `UPDATE admin_users SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return fmt.Errorf("set admin user active: %w", err)
	}
	return nil
}
