// Command seed fills the catalog database with deterministic demo products,
// comments and images.
//
//	go run ./cmd/seed -products 10000
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/shopapi/catalog/internal/config"
	"github.com/shopapi/catalog/internal/seed"
	"github.com/shopapi/catalog/migrations"
	"github.com/shopapi/catalog/pkg/database"
	"github.com/shopapi/catalog/pkg/logger"
)

func main() {
	products := flag.Int("products", 1000, "number of products to generate")
	rngSeed := flag.Uint64("seed", 42, "random seed; equal seeds produce equal data")
	flag.Parse()

	cfg, err := config.LoadWithDotEnv(".env")
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New("catalog-seed", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPool(ctx, &pgCfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	ds := seed.Generate(*products, *rngSeed)
	if err := seed.Load(ctx, pool, ds); err != nil {
		log.Error("failed to seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("catalog seeded",
		slog.Int("products", len(ds.Products)),
		slog.Int("comments", len(ds.Comments)),
		slog.Int("images", len(ds.Images)),
		slog.Duration("took", time.Since(start)),
	)
}
