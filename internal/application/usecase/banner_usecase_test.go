package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// fakeBannerRepo en memoria.
type fakeBannerRepo struct {
	byID   map[int64]*entity.Banner
	nextID int64
}

var _ repository.BannerRepository = (*fakeBannerRepo)(nil)

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{byID: map[int64]*entity.Banner{}}
}

func (f *fakeBannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	f.nextID++
	b.ID = f.nextID
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBannerRepo) GetByID(ctx context.Context, id int64) (*entity.Banner, error) {
	return f.byID[id], nil
}

func (f *fakeBannerRepo) List(ctx context.Context) ([]*entity.Banner, error) {
	var out []*entity.Banner
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBannerRepo) GetActiveByOrder(ctx context.Context, order int) (*entity.Banner, error) {
	for _, b := range f.byID {
		if b.IsActive && b.Order == order {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBannerRepo) SetOrder(ctx context.Context, id int64, order int) error {
	f.byID[id].Order = order
	return nil
}

func (f *fakeBannerRepo) SetActive(ctx context.Context, id int64, isActive bool) error {
	f.byID[id].IsActive = isActive
	return nil
}

// jpegBytes cabecera JPEG válida más relleno.
func jpegBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return b
}

func TestBannerUpload_JPEGValido(t *testing.T) {
	repo := newFakeBannerRepo()
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	img := jpegBytes(1024)
	resp, err := uc.Upload(context.Background(), "Promo Invierno", "promo.jpg", int64(len(img)), bytes.NewReader(img), 1)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 1, resp.Order)
	assert.Contains(t, resp.URL, "promo.jpg")
}

func TestBannerUpload_FormatoNoJPEGRechazado(t *testing.T) {
	repo := newFakeBannerRepo()
	files := &fakeFileStore{}
	uc := NewBannerUseCase(repo, files)

	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 100)...)
	_, err := uc.Upload(context.Background(), "Promo", "promo.png", int64(len(png)), bytes.NewReader(png), 1)
	assert.ErrorIs(t, err, domain.ErrFormatoImagen)
	assert.Empty(t, files.saved, "un archivo rechazado no se guarda")
}

func TestBannerUpload_ArchivoMuyGrandeRechazado(t *testing.T) {
	repo := newFakeBannerRepo()
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	_, err := uc.Upload(context.Background(), "Promo", "promo.jpg", maxBannerSize+1, bytes.NewReader(jpegBytes(16)), 1)
	assert.ErrorIs(t, err, domain.ErrArchivoMuyGrande)
}

func TestBannerUpload_PosicionOcupadaRechazada(t *testing.T) {
	repo := newFakeBannerRepo()
	repo.byID[1] = &entity.Banner{ID: 1, Order: 2, IsActive: true}
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	img := jpegBytes(64)
	_, err := uc.Upload(context.Background(), "Promo", "promo.jpg", int64(len(img)), bytes.NewReader(img), 2)
	assert.ErrorIs(t, err, domain.ErrPosicionOcupada)
}

// Un banner inactivo no bloquea su posición.
func TestBannerUpload_PosicionDeInactivoLibre(t *testing.T) {
	repo := newFakeBannerRepo()
	repo.byID[1] = &entity.Banner{ID: 1, Order: 2, IsActive: false}
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	img := jpegBytes(64)
	_, err := uc.Upload(context.Background(), "Promo", "promo.jpg", int64(len(img)), bytes.NewReader(img), 2)
	assert.NoError(t, err)
}

func TestBannerSetOrder_PosicionOcupada(t *testing.T) {
	repo := newFakeBannerRepo()
	repo.byID[1] = &entity.Banner{ID: 1, Order: 1, IsActive: true}
	repo.byID[2] = &entity.Banner{ID: 2, Order: 2, IsActive: true}
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	err := uc.SetOrder(context.Background(), 1, 2)
	assert.ErrorIs(t, err, domain.ErrPosicionOcupada)
	assert.Equal(t, 1, repo.byID[1].Order)
}

func TestBannerActivate_PosicionTomadaMientrasEstabaInactivo(t *testing.T) {
	repo := newFakeBannerRepo()
	repo.byID[1] = &entity.Banner{ID: 1, Order: 1, IsActive: false}
	repo.byID[2] = &entity.Banner{ID: 2, Order: 1, IsActive: true}
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	err := uc.Activate(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrPosicionOcupada)
	assert.False(t, repo.byID[1].IsActive)
}

func TestBannerRemove_DesactivaYLiberaPosicion(t *testing.T) {
	repo := newFakeBannerRepo()
	repo.byID[1] = &entity.Banner{ID: 1, Order: 1, IsActive: true}
	uc := NewBannerUseCase(repo, &fakeFileStore{})

	require.NoError(t, uc.Remove(context.Background(), 1))
	assert.False(t, repo.byID[1].IsActive)

	require.NoError(t, uc.Activate(context.Background(), 1))
	assert.True(t, repo.byID[1].IsActive)
}
