package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/drakeshop/inventory-api/docs"
	"github.com/drakeshop/inventory-api/internal/api/handler"
	"github.com/drakeshop/inventory-api/internal/api/middleware"
	"github.com/drakeshop/inventory-api/internal/core/ports"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Items  ports.ItemService
	Users  ports.UserService
	Tokens middleware.TokenVerifier
	// Health maps dependency names to readiness checks.
	Health      map[string]handler.Pinger
	CORSOrigins []string
	Logger      zerolog.Logger
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
		},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderLocation},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "inventory",
		Registerer: d.Registerer,
	}))

	// --- Dependencies ---
	items := handler.NewItemHandler(d.Items)
	users := handler.NewUserHandler(d.Users)
	health := handler.NewHealthHandler(d.Health)
	auth := middleware.Auth(d.Tokens)

	api := e.Group("/api")

	// --- Item routes (reads are public) ---
	api.GET("/items", items.List)
	api.GET("/items/:id", items.Get)
	api.POST("/items", items.Create, auth)
	api.PUT("/items/:id", items.Replace, auth)
	api.DELETE("/items/:id", items.Remove, auth)
	api.PATCH("/items/:id", items.AdjustAmount, auth)

	// --- User routes ---
	api.POST("/users/login", users.Login)
	api.GET("/auth", users.AuthCheck, auth)
	api.GET("/users", users.List, auth)
	api.GET("/users/:id", users.Get, auth)
	api.POST("/users", users.Create, auth)
	api.PUT("/users/:id", users.Replace, auth)
	api.DELETE("/users/:id", users.Remove, auth)

	// --- Probes, metrics, docs (no auth required) ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
