package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fromm-latam/panel-admin-api/internal/application/auth"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/infrastructure/mailer"
	"github.com/fromm-latam/panel-admin-api/internal/infrastructure/postgres"
	"github.com/fromm-latam/panel-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/fromm-latam/panel-admin-api/internal/interfaces/http"
	"github.com/fromm-latam/panel-admin-api/pkg/config"
	"github.com/fromm-latam/panel-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.App.RunMigrations {
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema aplicado")
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	adminUserRepo := postgres.NewAdminUserRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	webUserRepo := postgres.NewWebUserRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStore := storage.NewLocalStore(cfg.Storage.BaseDir, cfg.Storage.PublicURL)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)

	authUC := auth.NewAuthUseCase(adminUserRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, txRunner, fileStore, smtpMailer, log.Zerolog())
	contactUC := usecase.NewContactUseCase(contactRepo)
	adminUserUC := usecase.NewAdminUserUseCase(adminUserRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo, fileStore)
	clientUC := usecase.NewClientUseCase(webUserRepo, invoiceRepo, contactRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panel Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Archivos subidos (documentos de cotización y banners)
	app.Static("/files", cfg.Storage.BaseDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InvoiceUC:   invoiceUC,
		ContactUC:   contactUC,
		AdminUserUC: adminUserUC,
		BannerUC:    bannerUC,
		ClientUC:    clientUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
