package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/analytics"
	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PropertyUC  *usecase.PropertyUseCase
	UnitUC      *usecase.UnitUseCase
	TenantUC    *usecase.TenantUseCase
	LeaseUC     *usecase.LeaseUseCase
	PaymentUC   *usecase.PaymentUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	TicketUC    *usecase.TicketUseCase
	VisitorUC   *usecase.VisitorUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// Las rutas literales (/new) van antes de las rutas con :id para que
// Fiber no capture "new" como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Gestión: solo admin y manager
	manage := protected.Group("/", RequireRole(entity.RoleAdmin, entity.RoleManager))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	manage.Get("/dashboard", dashboardHandler.Snapshot)

	// Properties (protegido)
	properties := manage.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Post("/", propertyHandler.Create)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Put("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)

	// Units (protegido)
	units := manage.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)

	// Tenants (protegido)
	tenants := manage.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)

	// Leases (protegido)
	leases := manage.Group("/leases")
	leaseHandler := NewLeaseHandler(deps.LeaseUC)
	leases.Post("/", leaseHandler.Create)
	leases.Get("/", leaseHandler.List)
	leases.Get("/new", leaseHandler.Prefill)
	leases.Get("/:id", leaseHandler.GetByID)
	leases.Put("/:id", leaseHandler.Update)

	// Payments (protegido; sin update ni delete)
	payments := manage.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/new", paymentHandler.Prefill)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Get("/:id/receipt", paymentHandler.Receipt)

	// Expenses (protegido)
	expenses := manage.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)

	// Tickets (protegido)
	tickets := manage.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Patch("/:id", ticketHandler.Update)

	// Visitors (protegido; el rol guard solo accede a portería)
	visitors := protected.Group("/visitors", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleGuard))
	visitorHandler := NewVisitorHandler(deps.VisitorUC)
	visitors.Post("/", visitorHandler.Create)
	visitors.Get("/", visitorHandler.List)
	visitors.Get("/:id", visitorHandler.GetByID)
	visitors.Post("/:id/checkout", visitorHandler.Checkout)
}
