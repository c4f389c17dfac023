package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hellzyr/Nominer/factory"
	"github.com/Hellzyr/Nominer/nomina"
)

func init() {
	rootCmd.AddCommand(constantsCmd)
	constantsCmd.Flags().Bool("list", false, "List the built-in presets")
}

// ─── constants ──────────────────────────────────────────────────────────────

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Show the reference constants in use",
	Args:  cobra.NoArgs,
	RunE:  runConstants,
}

func runConstants(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range factory.Presets() {
			marker := " "
			if name == factory.DefaultPreset {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.Constants()
	if err != nil {
		return err
	}

	source := "preset " + cfg.Preset
	if cfg.ConstantsFile != "" {
		source = cfg.ConstantsFile
	}
	fmt.Fprintf(out, "Source:                      %s\n", source)
	fmt.Fprintf(out, "Year:                        %d\n", c.Year)
	fmt.Fprintf(out, "Minimum wage:                %s\n", nomina.FormatCOP(c.MinimumWage))
	fmt.Fprintf(out, "Transport allowance:         %s\n", nomina.FormatCOP(c.TransportAllowance))
	fmt.Fprintf(out, "Transport threshold:         %s\n", nomina.FormatCOP(c.TransportThreshold()))
	return nil
}
