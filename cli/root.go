package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hellzyr/Nominer/config"
	"github.com/Hellzyr/Nominer/factory"
	"github.com/Hellzyr/Nominer/nomina"
)

// ─── Root command ───────────────────────────────────────────────────────────
// Every payroll command reads a flat fields file (JSON or TOML), validates it
// the same way the HTTP form does and computes with the configured constants.

// now is the wall clock for commands that stamp a generation date.
var now = time.Now

func init() {
	rootCmd.PersistentFlags().String("constants", "", "JSON or TOML constants file (overrides --preset)")
	rootCmd.PersistentFlags().String("preset", "", fmt.Sprintf("Built-in constants preset (default %s)", factory.DefaultPreset))
}

var rootCmd = &cobra.Command{
	Use:   "nomina",
	Short: "Colombian payroll calculator",
	Long: `Compute a monthly Colombian payroll, the optional contract settlement,
and the electronic payroll XML from a flat file of form fields.

Reference constants come from a preset or a constants file, with
NOMINER_PRESET and NOMINER_CONSTANTS read from the environment or .env.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the environment configuration with the persistent
// flags applied on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if f, _ := cmd.Flags().GetString("constants"); f != "" {
		cfg.ConstantsFile = f
	}
	if p, _ := cmd.Flags().GetString("preset"); p != "" {
		cfg.Preset = p
		if !cmd.Flags().Changed("constants") {
			cfg.ConstantsFile = ""
		}
	}
	return cfg, nil
}

// payroll is a validated and computed fields file.
type payroll struct {
	doc    nomina.Document
	result nomina.Result
}

// loadPayroll reads the --file flag, validates it and computes the payroll.
func loadPayroll(cmd *cobra.Command) (payroll, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return payroll{}, fmt.Errorf("a fields file is required (--file)")
	}

	fields, err := factory.LoadFieldsFile(path)
	if err != nil {
		return payroll{}, err
	}
	if err := nomina.Validate(fields); err != nil {
		return payroll{}, err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return payroll{}, err
	}
	constants, err := cfg.Constants()
	if err != nil {
		return payroll{}, err
	}

	doc := nomina.ParseFields(fields)
	return payroll{doc: doc, result: nomina.Compute(doc.Input, constants)}, nil
}
