// Command seeder loads the reference geography (provinces, cantons,
// districts) and the category list from a YAML dataset. It runs offline,
// not as part of the main server, and may be re-run safely: rows are
// upserted by id.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse and validate the dataset without writing to DB
//	--seeder-config  path to seeder YAML config file
//	--data           path to the dataset file (overrides config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/legends-backend/internal/app"
	"github.com/heartmarshall/legends-backend/internal/app/seeder"
	"github.com/heartmarshall/legends-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.ReferenceRepo = (*reference.Repo)(nil)
	_ seeder.TxRunner      = (*postgres.TxManager)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	dataFlag := flag.String("data", "", "path to the dataset file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *dataFlag != "" {
		seederCfg.DataPath = *dataFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ds, err := seeder.ReadDataset(seederCfg.DataPath)
	if err != nil {
		logger.Error("read dataset", slog.String("path", seederCfg.DataPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pipeline := seeder.NewPipeline(logger, reference.New(pool), postgres.NewTxManager(pool), *seederCfg)
	if err := pipeline.Run(ctx, ds, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
