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
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/camivargas/cafestock-api/internal/application/analytics"
	"github.com/camivargas/cafestock-api/internal/application/auth"
	"github.com/camivargas/cafestock-api/internal/application/reports"
	"github.com/camivargas/cafestock-api/internal/application/usecase"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
	infrapdf "github.com/camivargas/cafestock-api/internal/infrastructure/pdf"
	"github.com/camivargas/cafestock-api/internal/infrastructure/postgres"
	"github.com/camivargas/cafestock-api/internal/infrastructure/snapshot"
	httpRouter "github.com/camivargas/cafestock-api/internal/interfaces/http"
	"github.com/camivargas/cafestock-api/internal/mirror"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/config"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

// ports agrupa los puertos de dominio que el backend elegido debe proveer.
type ports struct {
	locations  repository.LocationRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	items      repository.ItemRepository
	stock      repository.StockRepository
	orders     repository.OrderRepository
	transfers  repository.TransferRepository
	team       repository.TeamMemberRepository
	settings   repository.SettingsRepository
	accounts   repository.AccountRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var p ports
	var m *mirror.Mirror
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		itemRepo := postgres.NewItemRepository(pool)
		p = ports{
			locations:  postgres.NewLocationRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			suppliers:  postgres.NewSupplierRepository(pool),
			items:      itemRepo,
			stock:      itemRepo,
			orders:     postgres.NewOrderRepository(pool),
			transfers:  postgres.NewTransferRepository(pool),
			team:       postgres.NewTeamMemberRepository(pool),
			settings:   postgres.NewSettingsRepository(pool),
			accounts:   postgres.NewAccountRepository(pool),
		}

		// Espejo en memoria alimentado por NOTIFY: réplica local de lectura
		// que converge con la base aunque escriban otros procesos. Si la
		// conexión del listener se corta, la réplica se descarta completa:
		// las notificaciones perdidas no se recuperan.
		m = mirror.New(log)
		listener := postgres.NewListener(pool, log, m.Apply, m.ResetAll)
		go listener.Run(ctx)

	default: // memory
		fs, err := snapshot.NewFileStore(cfg.Store.DataDir, log)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir carpeta de snapshots")
		}
		st := store.New(fs, log)
		p = ports{
			locations:  st,
			categories: st,
			suppliers:  st,
			items:      st,
			stock:      st,
			orders:     st,
			transfers:  st,
			team:       st,
			settings:   st,
			accounts:   st,
		}
	}

	if err := ensureAdmin(p.accounts, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de cuenta admin")
	}

	locationUC := usecase.NewLocationUseCase(p.locations)
	categoryUC := usecase.NewCategoryUseCase(p.categories)
	supplierUC := usecase.NewSupplierUseCase(p.suppliers)
	itemUC := usecase.NewItemUseCase(p.items, p.stock)
	orderUC := usecase.NewOrderUseCase(p.orders)
	transferUC := usecase.NewTransferUseCase(p.transfers)
	teamUC := usecase.NewTeamUseCase(p.team)
	settingsUC := usecase.NewSettingsUseCase(p.settings)
	dashboardUC := appanalytics.NewDashboardUseCase(p.locations, p.items, p.orders, p.transfers)

	// PDF: reporte de inventario por sede
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewUseCase(p.locations, p.items, p.categories, pdfGenerator, cfg.App.Name)

	authUC := auth.NewUseCase(p.accounts, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC:  locationUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		ItemUC:      itemUC,
		OrderUC:     orderUC,
		TransferUC:  transferUC,
		TeamUC:      teamUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		Mirror:      m,
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

// registerSwagger monta la UI de Swagger sobre el documento servido desde
// disco. El middleware lee el archivo al registrarse y entra en pánico si no
// existe, así que ante un despliegue sin docs/ solo se omite la UI con un
// aviso; la API sigue levantando.
func registerSwagger(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Err(err).Str("file", filePath).Msg("swagger.json no disponible, se omite la UI de docs")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "CaféStock API",
	}))
}

// ensureAdmin garantiza que exista la cuenta administradora inicial. Si el
// email ya está registrado no toca nada (ni el password).
func ensureAdmin(accounts repository.AccountRepository, admin config.AdminConfig, log *logger.Logger) error {
	existing, err := accounts.FindAccountByEmail(admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account := &entity.Account{
		Email:        admin.Email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
	}
	if err := accounts.CreateAccount(account); err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("cuenta admin creada")
	return nil
}
