package main

import (
	"context"
	"database/sql"
	"delivery-thermal-service/internal/adapters/cache"
	"delivery-thermal-service/internal/adapters/catalog"
	"delivery-thermal-service/internal/adapters/distance"
	"delivery-thermal-service/internal/adapters/repositories"
	"delivery-thermal-service/internal/api"
	"delivery-thermal-service/internal/config"
	"delivery-thermal-service/internal/platform/db"
	"delivery-thermal-service/internal/ports"
	"delivery-thermal-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL catalog, route cache, ORS) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, driver, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	// Initialize schema and seed the catalog on startup for local runs.
	if err := initAndSeed(ctx, conn, driver, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	cat := repositories.NewSQLCatalogRepository(conn, driver)
	sim := services.NewSimulator(cat, services.ZeroCalibrator{})

	provider, closeProvider, err := newDistanceProvider(ctx, cfg, conn, driver)
	if err != nil {
		log.Fatal().Err(err).Msg("distance provider")
	}
	defer closeProvider()

	router := api.NewRouter(sim, cat, provider)

	// Timeouts allow for a cold-cache geocode + matrix round trip.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("db", driver).Bool("address_lookup", provider != nil).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
	log.Info().Msg("server stopped")
}

// openDB prefers postgres when DATABASE_URL is set and falls back to a
// local sqlite file.
func openDB(cfg config.Config) (*sql.DB, string, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, db.DriverPostgres, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("openDB: create %q: %w", dir, err)
		}
	}
	conn, err := db.OpenSqlite(cfg.DBPath)
	return conn, db.DriverSqlite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, driver, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	seed, err := loadSeed(seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedCatalog(ctx, conn, driver, seed); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// loadSeed reads the seed file, or uses the built-in tables when the file
// does not exist.
func loadSeed(path string) (repositories.CatalogSeed, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", path).Msg("seed file not found, using built-in catalog")
		return repositories.SeedFromSpecs(
			catalog.DefaultProducts(),
			catalog.DefaultPackagings(),
			catalog.DefaultTransports(),
		), nil
	}
	return repositories.LoadSeedFile(path)
}

// newDistanceProvider returns nil when no ORS key is configured, which
// disables address-based simulations. The returned cleanup releases the
// route cache connection and must be called.
func newDistanceProvider(ctx context.Context, cfg config.Config, conn *sql.DB, driver string) (ports.DistanceProvider, func(), error) {
	if cfg.ORSAPIKey == "" {
		log.Warn().Msg("ORS_API_KEY not set, address lookup disabled")
		return nil, func() {}, nil
	}

	routeCache, cleanup, err := newRouteCache(ctx, cfg, conn, driver)
	if err != nil {
		return nil, nil, err
	}

	provider, err := distance.NewORSDistanceProvider(distance.ORSConfig{
		APIKey:      cfg.ORSAPIKey,
		BaseURL:     cfg.ORSBaseURL,
		Country:     cfg.ORSCountry,
		MaxAttempts: cfg.ORSAttempts,
	}, routeCache)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return provider, cleanup, nil
}

// newRouteCache uses redis when REDIS_ADDR is set, else the route_cache
// table.
func newRouteCache(ctx context.Context, cfg config.Config, conn *sql.DB, driver string) (ports.RouteCache, func(), error) {
	if cfg.RedisAddr == "" {
		return cache.NewSQLRouteCache(conn, driver), func() {}, nil
	}

	client, err := cache.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}
	return cache.NewRedisRouteCache(client, cfg.RouteTTL), cleanup, nil
}
