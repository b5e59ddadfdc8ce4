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

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

const bannerColumns = `id, name, url, sort_order, is_active, created_at, updated_at`

func scanBanner(row pgx.Row) (*entity.Banner, error) {
	var b entity.Banner
	err := row.Scan(&b.ID, &b.Name, &b.URL, &b.Order, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un banner nuevo y completa su ID.
func (r *BannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	query := `
		INSERT INTO banners (name, url, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, b.Name, b.URL, b.Order, b.IsActive, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPosicionOcupada
		}
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner; nil si no existe.
func (r *BannerRepo) GetByID(ctx context.Context, id int64) (*entity.Banner, error) {
	b, err := scanBanner(r.q.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return b, nil
}

// List todos los banners ordenados por posición.
func (r *BannerRepo) List(ctx context.Context) ([]*entity.Banner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bannerColumns+` FROM banners ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var out []*entity.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetActiveByOrder banner activo en una posición; nil si está libre.
func (r *BannerRepo) GetActiveByOrder(ctx context.Context, order int) (*entity.Banner, error) {
	b, err := scanBanner(r.q.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE sort_order = $1 AND is_active`, order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner by order: %w", err)
	}
	return b, nil
}

// SetOrder mueve un banner a otra posición.
func (r *BannerRepo) SetOrder(ctx context.Context, id int64, order int) error {
	_, err := r.q.Exec(ctx, `UPDATE banners SET sort_order = $2, updated_at = now() WHERE id = $1`, id, order)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPosicionOcupada
		}
		return fmt.Errorf("set banner order: %w", err)
	}
	return nil
}

// SetActive activa o desactiva un banner.
func (r *BannerRepo) SetActive(ctx context.Context, id int64, isActive bool) error {
	_, err := r.q.Exec(ctx, `UPDATE banners SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPosicionOcupada
		}
		return fmt.Errorf("set banner active: %w", err)
	}
	return nil
}
