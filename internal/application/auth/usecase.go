package auth

import (
	"context"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
	"github.com/fromm-latam/panel-admin-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación del panel.
type AuthUseCase struct {
	adminRepo repository.AdminUserRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminUserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y genera el JWT. Con el usuario inactivo no
// se genera token: la respuesta lleva isActive en false y el panel muestra el
// aviso de cuenta deshabilitada.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.adminRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	resp := &dto.LoginResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		IsActive: user.IsActive,
	}
	if !user.IsActive {
		return resp, nil
	}
	role, ok := entity.RoleByID(user.RoleID)
	if !ok {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.RoleID, role.CountryCode(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp.AccessToken = token
	return resp, nil
}
