package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camivargas/cafestock-api/internal/application/analytics"
	"github.com/camivargas/cafestock-api/internal/application/auth"
	"github.com/camivargas/cafestock-api/internal/application/reports"
	"github.com/camivargas/cafestock-api/internal/application/usecase"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/mirror"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC  *usecase.LocationUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ItemUC      *usecase.ItemUseCase
	OrderUC     *usecase.OrderUseCase
	TransferUC  *usecase.TransferUseCase
	TeamUC      *usecase.TeamUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string

	// Mirror réplica de lectura en tiempo real; solo presente con el driver
	// postgres (con nil la ruta /realtime no se registra).
	Mirror *mirror.Mirror
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
	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Locations (protegido; crear/editar/borrar solo managers)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", managers, locationHandler.Create)
	locations.Put("/:id", managers, locationHandler.Update)
	locations.Delete("/:id", managers, locationHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", managers, categoryHandler.Create)
	categories.Put("/:id", managers, categoryHandler.Update)
	categories.Delete("/:id", managers, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", managers, supplierHandler.Create)
	suppliers.Put("/:id", managers, supplierHandler.Update)
	suppliers.Delete("/:id", managers, supplierHandler.Delete)

	// Items y stock (protegido; el ajuste de stock lo puede hacer staff)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", managers, itemHandler.Create)
	items.Put("/:id", managers, itemHandler.Update)
	items.Delete("/:id", managers, itemHandler.Delete)
	items.Post("/:id/adjust-stock", itemHandler.AdjustStock)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", managers, orderHandler.Delete)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Post("/", transferHandler.Create)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Delete("/:id", managers, transferHandler.Delete)
	transfers.Post("/:id/complete", transferHandler.Complete)

	// Team (protegido, solo admin)
	team := protected.Group("/team", adminOnly)
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Get("/", teamHandler.List)
	team.Get("/:id", teamHandler.GetByID)
	team.Post("/", teamHandler.Create)
	team.Put("/:id", teamHandler.Update)
	team.Delete("/:id", teamHandler.Delete)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/current-location", settingsHandler.SetCurrentLocation)
	settings.Put("/theme", settingsHandler.SetTheme)
	settings.Put("/flags/:key", settingsHandler.SetFlag)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.Inventory)

	// Réplica en tiempo real (protegido; solo driver postgres)
	if deps.Mirror != nil {
		realtimeHandler := NewRealtimeHandler(deps.Mirror)
		protected.Get("/realtime/:table", realtimeHandler.Table)
	}
}
