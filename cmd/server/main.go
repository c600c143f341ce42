// Command server runs the smart-building dashboard HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/smarthome/building-dashboard/internal/api"
	"github.com/smarthome/building-dashboard/internal/api/handler"
	"github.com/smarthome/building-dashboard/internal/api/middleware"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
	"github.com/smarthome/building-dashboard/internal/core/service"
	"github.com/smarthome/building-dashboard/internal/infrastructure/db/memory"
	mongostore "github.com/smarthome/building-dashboard/internal/infrastructure/db/mongo"
	redisstore "github.com/smarthome/building-dashboard/internal/infrastructure/db/redis"
	"github.com/smarthome/building-dashboard/internal/infrastructure/fixtures"
	"github.com/smarthome/building-dashboard/internal/infrastructure/http/handlers"
	"github.com/smarthome/building-dashboard/internal/infrastructure/queue"
	"github.com/smarthome/building-dashboard/internal/infrastructure/token"
	"github.com/smarthome/building-dashboard/internal/pkg/config"
	"github.com/smarthome/building-dashboard/pkg/logger"
)

const (
	serviceName     = "building-dashboard"
	shutdownTimeout = 10 * time.Second
	sessionSweep    = time.Minute
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:       cfg.LogLevel,
		Pretty:      !cfg.IsProduction(),
		Caller:      !cfg.IsProduction(),
		Service:     serviceName,
		Environment: cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	clk := clock.New()
	readiness := make(map[string]handlers.Check)
	g, gCtx := errgroup.WithContext(ctx)

	// --- Session store ---
	var sessionRepo ports.SessionRepository
	switch cfg.Session.Backend {
	case config.BackendRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
		readiness["redis"] = redisstore.Check(rdb)
	default:
		mem := memory.NewSessionRepository(cfg.Session.TTL, clk)
		g.Go(func() error {
			mem.RunCleanup(gCtx, sessionSweep)
			return nil
		})
		sessionRepo = mem
	}

	// --- Catalog ---
	var catalog ports.CatalogRepository
	switch cfg.Catalog.Backend {
	case config.BackendMongo:
		store, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		repo := mongostore.NewCatalogRepository(store.Database())
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("catalog indexes: %w", err)
		}
		seeded, err := repo.SeedIfEmpty(ctx, fixtures.Seed(clk.Now().UTC()))
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Str("database", cfg.Mongo.Database).Msg("catalog seeded with demo data")
		}
		readiness["mongodb"] = store.Ping
		catalog = repo
	default:
		catalog = memory.NewCatalogRepository(fixtures.Seed(clk.Now().UTC()))
	}

	// --- Services ---
	verifier := service.NewBcryptVerifier(map[domain.Role]string{
		domain.RoleAdmin:       cfg.Auth.AdminPasswordHash,
		domain.RoleHomeowner:   cfg.Auth.HomeownerPasswordHash,
		domain.RoleMaintenance: cfg.Auth.MaintenancePasswordHash,
	})
	tokens := token.NewJWTIssuer(token.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: serviceName,
		TTL:    cfg.Session.TTL,
		Clock:  clk,
	})
	sessions := service.NewSessionService(sessionRepo, verifier, tokens, service.SessionOptions{
		LoginDelay:      cfg.Auth.LoginDelay,
		AllowRoleSwitch: cfg.Auth.RoleSwitch,
		Clock:           clk,
	}, logger.Component("session"))
	dashboards := service.NewDashboardService(catalog, service.SystemInfo{
		Environment:    cfg.Env,
		SessionBackend: cfg.Session.Backend,
		SessionTTL:     cfg.Session.TTL,
		CatalogBackend: cfg.Catalog.Backend,
		LoginDelay:     cfg.Auth.LoginDelay,
		StrictLogin:    verifier.Strict(),
		RoleSwitch:     cfg.Auth.RoleSwitch,
		DeviceWorkers:  cfg.Devices.Workers,
	}, logger.Component("dashboard"))
	devices := service.NewDeviceService(catalog, clk, logger.Component("devices"))
	orders := service.NewWorkOrderService(catalog, clk, logger.Component("work_orders"))

	// --- Background workers ---
	dispatcher := queue.NewDispatcher(cfg.Devices.Workers, devices, logger.Component("dispatcher"),
		queue.WithLatency(cfg.Devices.CommandLatency),
		queue.WithClock(clk),
	)
	dispatcher.Start(gCtx)

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
	g.Go(func() error {
		loginLimiter.RunCleanup(gCtx)
		return nil
	})

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Log:        log,
		Sessions:   sessions,
		Tokens:     tokens,
		Dashboards: dashboards,
		Devices:    devices,
		WorkOrders: orders,
		Commands:   dispatcher,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL,
		},
		LoginLimiter: loginLimiter,
		Readiness:    readiness,
	})

	address := ":" + cfg.Port
	g.Go(func() error {
		log.Info().
			Str("address", address).
			Str("sessions", cfg.Session.Backend).
			Str("catalog", cfg.Catalog.Backend).
			Bool("strict_login", verifier.Strict()).
			Msg("starting server")
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := e.Shutdown(shutdownCtx)
		dispatcher.Wait()
		return err
	})

	return g.Wait()
}
