/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Nominer payroll API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env and NOMINER_* environment variables
  2. Parse command-line flags (flags win over the environment)
  3. Build the zap logger
  4. Resolve payroll constants (file or preset)
  5. Initialize SQLite store
  6. Create API handler and router
  7. Serve until SIGINT/SIGTERM

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite database path (default: nominer.db)
              Use ":memory:" for in-memory database
  -constants  JSON or TOML constants file
  -preset     Built-in constants preset (default: co-2025)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/nominer.db"

  # Run with in-memory database and 2024 constants
  ./server -db=":memory:" -preset=co-2024

  # Same, from the environment
  NOMINER_DB=":memory:" NOMINER_PRESET=co-2024 ./server

ENVIRONMENT:
  See config/config.go. NOMINER_ENV=production switches to JSON logs.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
  - cmd/nomina: the same server via "nomina serve"
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Hellzyr/Nominer/api"
	"github.com/Hellzyr/Nominer/config"
	"github.com/Hellzyr/Nominer/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flag.StringVar(&cfg.ConstantsFile, "constants", cfg.ConstantsFile, "JSON or TOML constants file")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "Built-in constants preset")
	flag.Parse()

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	constants, err := cfg.Constants()
	if err != nil {
		logger.Fatal("Failed to load payroll constants", zap.Error(err))
	}

	// Initialize store
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	// Initialize handler
	handler := api.NewHandler(store, constants, logger)
	router := api.NewRouter(handler)

	logger.Info("Payroll constants loaded",
		zap.Int("year", constants.Year),
		zap.String("minimum_wage", constants.MinimumWage.String()),
		zap.String("transport_threshold", constants.TransportThreshold().String()))
	logger.Info("API available", zap.String("url", fmt.Sprintf("http://localhost:%d/api", cfg.Port)))

	// Wait for interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, cfg.Addr(), router, logger); err != nil {
		logger.Error("Server failed", zap.Error(err))
	}
}
