package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/auth"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
	"github.com/fromm-latam/panel-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	ContactUC   *usecase.ContactUseCase
	AdminUserUC *usecase.AdminUserUseCase
	BannerUC    *usecase.BannerUseCase
	ClientUC    *usecase.ClientUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Los paths y verbos conservan los que el
// panel ya consume.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios del panel (solo SuperAdmin). /enable/:id va antes que /:id.
	adminUsers := protected.Group("/users-admin", RequireRole(entity.RoleSuperAdmin))
	adminUserHandler := NewAdminUserHandler(deps.AdminUserUC)
	adminUsers.Get("/", adminUserHandler.List)
	adminUsers.Post("/", adminUserHandler.Create)
	adminUsers.Patch("/enable/:id", adminUserHandler.Enable)
	adminUsers.Get("/:id", adminUserHandler.GetByID)
	adminUsers.Patch("/:id", adminUserHandler.Update)

	// Cotizaciones. Las rutas fijas van antes que /:id.
	invoices := protected.Group("/admin/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	clientHandler := NewClientHandler(deps.ClientUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", RequireEscritura(), invoiceHandler.Create)
	invoices.Get("/datos/numeros", dashboardHandler.Counters)
	invoices.Get("/montos/fechas", dashboardHandler.AmountsByDate)
	invoices.Get("/ventas/fechas", dashboardHandler.SoldCount)
	invoices.Get("/user/:id", clientHandler.History)
	invoices.Post("/invoice-from-contact", RequireEscritura(), invoiceHandler.CreateFromContact)
	invoices.Put("/upload", RequireEscritura(), invoiceHandler.Upload)
	invoices.Put("/seguimiento", RequireEscritura(), invoiceHandler.Seguimiento)
	invoices.Put("/vendido", RequireEscritura(), invoiceHandler.Vendido)
	invoices.Put("/derivado", RequireEscritura(), invoiceHandler.Derivado)
	invoices.Put("/perdido", RequireEscritura(), invoiceHandler.Perdido)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Contactos. PUT sobre la colección marca el contacto como servicio.
	contacts := protected.Group("/admin/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Put("/", RequireEscritura(), contactHandler.Servicio)
	contacts.Put("/derivado", RequireEscritura(), contactHandler.Derivado)
	contacts.Put("/finalizado", RequireEscritura(), contactHandler.Finalizado)
	contacts.Get("/:id", contactHandler.GetByID)

	// Clientes del sitio
	clients := protected.Group("/admin/users")
	clients.Get("/", clientHandler.List)
	clients.Get("/email", clientHandler.Search)

	// Banners. La subida entra por /files/upload (multipart file+order).
	banners := protected.Group("/banners")
	bannerHandler := NewBannerHandler(deps.BannerUC)
	banners.Get("/", bannerHandler.List)
	banners.Put("/order", RequireEscritura(), bannerHandler.SetOrder)
	banners.Put("/remove", RequireEscritura(), bannerHandler.Remove)
	banners.Put("/activate", RequireEscritura(), bannerHandler.Activate)
	banners.Get("/:id", bannerHandler.GetByID)
	protected.Post("/files/upload", RequireEscritura(), bannerHandler.Upload)
}
