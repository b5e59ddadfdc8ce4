package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// AdminUserUseCase administración de los usuarios del panel (solo SuperAdmin).
type AdminUserUseCase struct {
	users repository.AdminUserRepository
}

// NewAdminUserUseCase construye el caso de uso.
func NewAdminUserUseCase(users repository.AdminUserRepository) *AdminUserUseCase {
	return &AdminUserUseCase{users: users}
}

// List todos los usuarios del panel, paginados en memoria. Asume que la
// tabla es un conjunto chico y cerrado (decenas de cuentas operativas); si
// alguna vez crece, mover limit/offset al repositorio.
func (uc *AdminUserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListAdminUsersResponse, error) {
	page.DefaultPage()
	all, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	start := page.Page * page.Limit
	end := start + page.Limit
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	out := make([]dto.AdminUserResponse, 0, end-start)
	for _, u := range all[start:end] {
		out = append(out, *toAdminUserResponse(u))
	}
	return &dto.ListAdminUsersResponse{
		Users:      out,
		TotalPages: pageCount(int64(len(all)), page.Limit),
	}, nil
}

// GetByID un usuario del panel.
func (uc *AdminUserUseCase) GetByID(ctx context.Context, id int64) (*dto.AdminUserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toAdminUserResponse(u), nil
}

// Create alta de usuario administrativo. El rol viaja por nombre y el email
// debe ser único.
func (uc *AdminUserUseCase) Create(ctx context.Context, in dto.CreateAdminUserRequest) (*dto.AdminUserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, ok := entity.RoleByName(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.AdminUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toAdminUserResponse(user), nil
}

// Update edición de un usuario; el password se vuelve a hashear siempre.
func (uc *AdminUserUseCase) Update(ctx context.Context, id int64, in dto.UpdateAdminUserRequest) (*dto.AdminUserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := uc.users.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = in.Email
	}
	if in.Role != "" {
		role, ok := entity.RoleByName(in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		user.RoleID = role.ID
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return toAdminUserResponse(user), nil
}

// SetActive habilita o inhabilita el acceso al panel.
func (uc *AdminUserUseCase) SetActive(ctx context.Context, id int64, isActive bool) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.users.SetActive(ctx, id, isActive)
}

func toAdminUserResponse(u *entity.AdminUser) *dto.AdminUserResponse {
	roleName := ""
	if r, ok := entity.RoleByID(u.RoleID); ok {
		roleName = r.Name
	}
	return &dto.AdminUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      dto.StatusRef{ID: u.RoleID, Name: roleName},
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
