// Siembra inicial del panel: aplica el esquema y crea el primer SuperAdmin si
// no existe. Uso:
//
//	SEED_ADMIN_EMAIL=admin@fromm-latam.com SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
	"github.com/fromm-latam/panel-admin-api/internal/infrastructure/postgres"
	"github.com/fromm-latam/panel-admin-api/pkg/config"
	"github.com/fromm-latam/panel-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}
	if email == "" || password == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("esquema aplicado")

	repo := postgres.NewAdminUserRepository(pool)
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el SuperAdmin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	user := &entity.AdminUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("crear SuperAdmin")
	}
	log.Info().Int64("id", user.ID).Str("email", email).Msg("SuperAdmin creado")
}
