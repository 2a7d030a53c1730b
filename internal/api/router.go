package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/eventhub/events-api/docs"
	"github.com/eventhub/events-api/internal/api/handler"
	"github.com/eventhub/events-api/internal/api/middleware"
	"github.com/eventhub/events-api/internal/core/domain"
	"github.com/eventhub/events-api/internal/core/ports"
)

// Deps are the explicitly constructed collaborators the router wires into
// handlers. Construction happens once in main; nothing here is global.
type Deps struct {
	Pool          *pgxpool.Pool
	Tokens        ports.TokenService
	Auth          ports.AuthService
	Events        ports.EventService
	Registrations ports.RegistrationService
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("events"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	eventHandler := handler.NewEventHandler(d.Events)
	regHandler := handler.NewRegistrationHandler(d.Registrations)
	healthHandler := handler.NewHealthHandler(d.Pool)

	requireAuth := middleware.Auth(d.Tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.POST("/events", eventHandler.Create, requireAuth, requireAdmin)
	api.PUT("/events/:id", eventHandler.Update, requireAuth, requireAdmin)
	api.DELETE("/events/:id", eventHandler.Delete, requireAuth, requireAdmin)
	api.GET("/events/:id/registrations", regHandler.Participants, requireAuth, requireAdmin)

	api.POST("/registration", regHandler.Register, requireAuth)
	api.DELETE("/registration/:event_id", regHandler.Cancel, requireAuth)
	api.GET("/user/events", regHandler.MyEvents, requireAuth)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
