package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libroya-api/internal/application/accounts"
	"github.com/jhoicas/libroya-api/internal/application/auth"
	"github.com/jhoicas/libroya-api/internal/application/catalog"
	"github.com/jhoicas/libroya-api/internal/application/dashboard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccountUC   *accounts.AccountUseCase
	BookUC      *catalog.BookUseCase
	DashboardUC *dashboard.UseCase
	ExportUC    *dashboard.ExportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuenta propia (protegido)
	me := protected.Group("/users/me")
	accountHandler := NewAccountHandler(deps.AccountUC)
	me.Get("/", accountHandler.GetProfile)
	me.Put("/", accountHandler.UpdateProfile)
	me.Get("/orders", accountHandler.ListMyOrders)
	me.Get("/library", accountHandler.GetLibrary)

	// Catálogo (protegido; crear exige rol vendedor)
	books := protected.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC)
	books.Post("/", RequireSeller(), bookHandler.Create)
	books.Get("/", bookHandler.List)
	books.Get("/:id", bookHandler.GetByID)

	// Dashboard del vendedor (protegido, rol vendedor)
	seller := protected.Group("/seller", RequireSeller())
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ExportUC)
	seller.Get("/dashboard", dashboardHandler.GetDashboard)
	seller.Get("/dashboard/export", dashboardHandler.ExportDashboard)
}
