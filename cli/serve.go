package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hellzyr/Nominer/api"
	"github.com/Hellzyr/Nominer/config"
	"github.com/Hellzyr/Nominer/store/sqlite"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "HTTP server port")
	serveCmd.Flags().String("db", config.DefaultDBPath, `SQLite database path (":memory:" for in-memory)`)
}

// ─── serve ──────────────────────────────────────────────────────────────────

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the payroll HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath, _ = cmd.Flags().GetString("db")
	}

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	constants, err := cfg.Constants()
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	handler := api.NewHandler(store, constants, logger)
	logger.Info("Payroll constants loaded",
		zap.Int("year", constants.Year),
		zap.String("minimum_wage", constants.MinimumWage.String()),
		zap.String("db", cfg.DBPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return api.Serve(ctx, cfg.Addr(), api.NewRouter(handler), logger)
}
