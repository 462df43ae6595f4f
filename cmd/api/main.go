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
	appanalytics "github.com/jhoicas/Propiedades-api/internal/application/analytics"
	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Propiedades-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Propiedades-api/internal/interfaces/http"
	"github.com/jhoicas/Propiedades-api/pkg/config"
	"github.com/jhoicas/Propiedades-api/pkg/logger"
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

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	leaseRepo := postgres.NewLeaseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	visitorRepo := postgres.NewVisitorRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: recibo de pago de renta
	receiptGen := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	propertyUC := usecase.NewPropertyUseCase(propertyRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo, propertyRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	leaseUC := usecase.NewLeaseUseCase(leaseRepo, unitRepo, tenantRepo, txRunner)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, tenantRepo, leaseRepo, receiptGen)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, propertyRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, unitRepo)
	visitorUC := usecase.NewVisitorUseCase(visitorRepo, unitRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
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
		Title:    "Propiedades API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PropertyUC:  propertyUC,
		UnitUC:      unitUC,
		TenantUC:    tenantUC,
		LeaseUC:     leaseUC,
		PaymentUC:   paymentUC,
		ExpenseUC:   expenseUC,
		TicketUC:    ticketUC,
		VisitorUC:   visitorUC,
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
