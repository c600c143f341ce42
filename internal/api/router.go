package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/smarthome/building-dashboard/docs"
	"github.com/smarthome/building-dashboard/internal/api/handler"
	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/api/middleware"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
	"github.com/smarthome/building-dashboard/internal/infrastructure/http/handlers"
	"github.com/smarthome/building-dashboard/pkg/logger"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Log        zerolog.Logger
	Sessions   ports.SessionService
	Tokens     ports.TokenIssuer
	Dashboards ports.DashboardService
	Devices    ports.DeviceService
	WorkOrders ports.WorkOrderService
	Commands   handler.CommandQueue
	Cookie     handler.CookieConfig

	// LoginLimiter throttles POST /auth/login. Nil disables throttling.
	LoginLimiter *middleware.RateLimiter
	// Readiness checks run by GET /health/ready, keyed by dependency name.
	Readiness map[string]handlers.Check
	// Registry receives the HTTP request metrics and backs /metrics. Nil uses
	// the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestScopedLogger(deps.Log))
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(prometheusConfig(deps.Registry)))

	// --- Dependencies ---
	session := middleware.Session(middleware.SessionConfig{
		Service:    deps.Sessions,
		Tokens:     deps.Tokens,
		CookieName: deps.Cookie.Name,
	})
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Cookie)
	viewHandler := handler.NewViewHandler(deps.Dashboards)
	deviceHandler := handler.NewDeviceHandler(deps.Devices, deps.Commands)
	orderHandler := handler.NewWorkOrderHandler(deps.WorkOrders)

	// --- Health probes, metrics and docs (no session) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Unguarded views ---
	e.GET("/", viewHandler.Root, session)
	e.GET(domain.LoginPath, viewHandler.Login, session)

	// --- Session API ---
	auth := e.Group("/auth", session)
	loginMW := []echo.MiddlewareFunc{}
	if deps.LoginLimiter != nil {
		loginMW = append(loginMW, deps.LoginLimiter.OnReject(func(echo.Context) {
			metrics.LoginsTotal.WithLabelValues("unknown", "rate_limited").Inc()
		}).Middleware())
	}
	auth.POST("/login", authHandler.Login, loginMW...)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/switch-role", authHandler.SwitchRole)
	auth.GET("/me", authHandler.Me)

	// --- Role view trees ---
	// Each tree is a group guarded as a whole, so nested paths inherit the
	// requirement of the tree root.
	trees := make(map[domain.Role]*echo.Group, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		g := e.Group(role.RootPath(), session, middleware.RoleTree(role))
		g.GET("", viewHandler.Role)
		g.GET("/*", viewHandler.Role)
		trees[role] = g
	}

	trees[domain.RoleHomeowner].POST("/devices/:id/control", deviceHandler.Control)

	trees[domain.RoleMaintenance].POST("/orders/:id/start", orderHandler.Start)
	trees[domain.RoleMaintenance].POST("/orders/:id/complete", orderHandler.Complete)
	trees[domain.RoleMaintenance].POST("/orders/:id/cancel", orderHandler.Cancel)

	// --- Catch-all ---
	e.RouteNotFound("/*", viewHandler.NotFound, session)

	return e
}

// requestScopedLogger stores a logger tagged with the request id in the
// request context.
func requestScopedLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			req := c.Request()
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), log.With().Str("request_id", id).Logger())))
			return next(c)
		}
	}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/health" || p == "/metrics"
		},
		LogStatus:    true,
		LogURI:       true,
		LogError:     true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("request_id", v.RequestID).
				Int64("latency_ms", v.Latency.Milliseconds()).
				Msg("request")
			return nil
		},
	})
}

func prometheusConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
