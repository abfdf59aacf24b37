package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/contactbook/contact-api/internal/api/handler"
	"github.com/contactbook/contact-api/internal/api/middleware"
	"github.com/contactbook/contact-api/internal/core/ports"
	"github.com/contactbook/contact-api/internal/core/service"
	"github.com/contactbook/contact-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. Repositories come in as
// interfaces so tests can wire in-memory implementations.
type Dependencies struct {
	Users      ports.UserRepository
	Contacts   ports.ContactRepository
	Store      handlers.Pinger // readiness probe target; nil skips the check
	Logger     zerolog.Logger
	BcryptCost int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("contacts"))

	// --- Dependencies ---
	userService := service.NewUserService(deps.Users, deps.Logger, deps.BcryptCost)
	contactService := service.NewContactService(deps.Contacts, deps.Logger)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	auth := middleware.Auth(deps.Users)

	// --- User lifecycle routes ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/current", userHandler.Current, auth)
	users.PATCH("/current", userHandler.Update, auth)
	users.DELETE("/current", userHandler.Logout, auth)

	// --- Contact routes ---
	e.POST("/api/contacts", contactHandler.Create, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
