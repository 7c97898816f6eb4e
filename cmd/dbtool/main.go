package main

import (
	"context"
	"delivery-thermal-service/internal/adapters/repositories"
	"delivery-thermal-service/internal/config"
	"delivery-thermal-service/internal/platform/db"
	"flag"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

// dbtool prepares a postgres database: schema, then catalog seed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	seedPath := flag.String("seed", cfg.SeedPath, "catalog seed file (.yaml, .yml or .json)")
	schemaOnly := flag.Bool("schema-only", false, "create tables without seeding")
	flag.Parse()

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("schema ready")

	if *schemaOnly {
		return
	}

	seed, err := repositories.LoadSeedFile(*seedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed")
	}

	log.Info().Str("path", *seedPath).
		Int("products", len(seed.Products)).
		Int("packagings", len(seed.Packagings)).
		Int("transports", len(seed.Transports)).
		Msg("seeding catalog")
	if err := repositories.SeedCatalog(ctx, conn, db.DriverPostgres, seed); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding complete")
}
