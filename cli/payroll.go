package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
	"github.com/Hellzyr/Nominer/report"
)

func init() {
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(xmlCmd)
	rootCmd.AddCommand(pdfCmd)

	computeCmd.Flags().StringP("file", "f", "", "Fields file (JSON or TOML)")
	computeCmd.Flags().Bool("json", false, "Print the full result as JSON")

	xmlCmd.Flags().StringP("file", "f", "", "Fields file (JSON or TOML)")
	xmlCmd.Flags().StringP("output", "o", "", "Write the XML to this path instead of stdout")
	xmlCmd.Flags().String("date", "", "Generation date YYYY-MM-DD (default today)")
	xmlCmd.Flags().String("number", "", "Payroll document number (default 1)")

	pdfCmd.Flags().StringP("file", "f", "", "Fields file (JSON or TOML)")
	pdfCmd.Flags().StringP("output", "o", "", "Path of the payslip PDF")
	pdfCmd.Flags().String("date", "", "Generation date YYYY-MM-DD (default today)")
	_ = pdfCmd.MarkFlagRequired("output")
}

// ─── compute ────────────────────────────────────────────────────────────────

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a payroll and print the summary",
	Example: `  nomina compute -f fields.json
  nomina compute -f fields.toml --preset co-2024 --json`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func runCompute(cmd *cobra.Command, args []string) error {
	p, err := loadPayroll(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Result  nomina.Result        `json:"result"`
			Summary []nomina.SummaryLine `json:"summary"`
		}{p.result, nomina.Summary(p.result)})
	}

	if name := p.doc.Employee.Name; name != "" {
		fmt.Fprintf(out, "%s (%s %s)\n\n", name, p.doc.Employee.DocumentType, p.doc.Employee.DocumentNumber)
	}
	printSummary(out, nomina.Summary(p.result))
	return nil
}

func printSummary(w io.Writer, lines []nomina.SummaryLine) {
	for _, l := range lines {
		fmt.Fprintf(w, "%-28s %s\n", l.Label+":", l.Value)
	}
}

// ─── xml ────────────────────────────────────────────────────────────────────

var xmlCmd = &cobra.Command{
	Use:   "xml",
	Short: "Generate the electronic payroll XML",
	Example: `  nomina xml -f fields.json -o nomina.xml
  nomina xml -f fields.json --date 2025-06-30 > nomina.xml`,
	Args: cobra.NoArgs,
	RunE: runXML,
}

func runXML(cmd *cobra.Command, args []string) error {
	p, err := loadPayroll(cmd)
	if err != nil {
		return err
	}
	generatedAt, err := generationDate(cmd)
	if err != nil {
		return err
	}
	number, _ := cmd.Flags().GetString("number")

	data, err := nomina.Serializer{GeneratedAt: generatedAt, Number: number}.Serialize(p.doc, p.result)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return writeOutput(cmd, output, data)
}

// ─── pdf ────────────────────────────────────────────────────────────────────

var pdfCmd = &cobra.Command{
	Use:     "pdf",
	Short:   "Generate a printable payslip",
	Example: `  nomina pdf -f fields.json -o desprendible.pdf`,
	Args:    cobra.NoArgs,
	RunE:    runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	p, err := loadPayroll(cmd)
	if err != nil {
		return err
	}
	generatedAt, err := generationDate(cmd)
	if err != nil {
		return err
	}

	data, err := report.Payslip(p.doc, p.result, generatedAt)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	return writeOutput(cmd, output, data)
}

// ─── helpers ────────────────────────────────────────────────────────────────

// generationDate reads --date, defaulting to today.
func generationDate(cmd *cobra.Command) (generic.TimePoint, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return generic.FromTime(now()), nil
	}
	return generic.ParseDate(s)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
