package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"boxful-client/internal/adapters/storage"
	"boxful-client/internal/config"
	"boxful-client/internal/platform/db"
	"boxful-client/internal/platform/obs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// dbtool prepares a Postgres database for the postgres session driver.
func main() {
	setupLogging()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := initSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
}

// setupLogging loads .env before configuring the logger so LOG_LEVEL and
// LOG_FORMAT may come from the file.
func setupLogging() {
	envErr := godotenv.Load()
	obs.Setup(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console"))
	if envErr != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}
}

func initSchema(ctx context.Context, conn *sql.DB) error {
	log.Info().Msg("Initializing database schema...")
	if err := storage.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	log.Info().Msg("Schema ready.")
	return nil
}
