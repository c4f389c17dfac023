package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldsJSON = `{
  "nit": "900123456-7",
  "razonSocial": "Comercializadora Andina SAS",
  "nombreEmpleado": "Laura Gómez",
  "tipoDocumento": "CC",
  "identificacion": "1020304050",
  "cargo": "Analista",
  "tipoContrato": "indefinido",
  "fechaInicioContrato": "2025-01-01",
  "centroCosto": "ADM-01",
  "salarioBase": 1423500,
  "diasTrabajados": "30"
}`

// execute runs the root command with fresh flag values and captures output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range []string{"NOMINER_CONSTANTS", "NOMINER_PRESET", "NOMINER_PORT", "NOMINER_DB", "NOMINER_ENV"} {
		t.Setenv(k, "")
	}
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func pinClock(t *testing.T, tm time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return tm }
	t.Cleanup(func() { now = prev })
}

// ─── compute ────────────────────────────────────────────────────────────────

func TestCompute_PrintsSummary(t *testing.T) {
	// GIVEN a complete fields file
	path := writeFile(t, "fields.json", fieldsJSON)

	// WHEN computing it
	out, _, err := execute(t, "compute", "-f", path)

	// THEN the formatted summary is printed
	require.NoError(t, err)
	assert.Contains(t, out, "Laura Gómez (CC 1020304050)")
	assert.Contains(t, out, "Total devengado:")
	assert.Contains(t, out, "$ 1.623.500,00")
	assert.Contains(t, out, "$ 1.509.620,00")
	assert.NotContains(t, out, "Días a liquidar")
}

func TestCompute_JSON(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)

	out, _, err := execute(t, "compute", "-f", path, "--json")
	require.NoError(t, err)

	var got struct {
		Result  map[string]any `json:"result"`
		Summary []struct {
			Key string `json:"key"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1509620", got.Result["net_pay"])
	assert.Len(t, got.Summary, 7)
}

func TestCompute_TOMLWithSettlement(t *testing.T) {
	// GIVEN a TOML fields file with both contract dates
	path := writeFile(t, "fields.toml", `
nit = "900123456-7"
razonSocial = "Comercializadora Andina SAS"
nombreEmpleado = "Laura Gómez"
tipoDocumento = "CC"
identificacion = "1020304050"
cargo = "Analista"
tipoContrato = "indefinido"
fechaInicioContrato = 2025-01-01
fechaFinContrato = 2025-06-30
causaTerminacion = "sin_justa"
centroCosto = "ADM-01"
salarioBase = 1423500
diasTrabajados = 30
`)

	// WHEN computing it
	out, _, err := execute(t, "compute", "-f", path)

	// THEN the settlement lines are included
	require.NoError(t, err)
	assert.Contains(t, out, "Días a liquidar:")
	assert.Contains(t, out, "Indemnización:")
}

func TestCompute_FirstMissingField(t *testing.T) {
	path := writeFile(t, "fields.json", `{"razonSocial": "X"}`)

	_, _, err := execute(t, "compute", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nit")
}

func TestCompute_RejectsMalformedContractDate(t *testing.T) {
	fields := strings.Replace(fieldsJSON, `"fechaInicioContrato": "2025-01-01"`,
		`"fechaInicioContrato": "01/01/2025", "fechaFinContrato": "2025-06-30"`, 1)
	path := writeFile(t, "fields.json", fields)

	_, _, err := execute(t, "xml", "-f", path, "--date", "2025-06-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fechaInicioContrato")
}

func TestCompute_RequiresFile(t *testing.T) {
	_, _, err := execute(t, "compute")
	assert.Error(t, err)
}

func TestCompute_PresetChangesTransportThreshold(t *testing.T) {
	// GIVEN a salary above the 2024 threshold but below the 2025 one
	fields := strings.Replace(fieldsJSON, `"salarioBase": 1423500`, `"salarioBase": 2700000`, 1)
	path := writeFile(t, "fields.json", fields)

	// WHEN computing with each preset
	out2025, _, err := execute(t, "compute", "-f", path, "--json")
	require.NoError(t, err)
	out2024, _, err := execute(t, "compute", "-f", path, "--json", "--preset", "co-2024")
	require.NoError(t, err)

	// THEN only 2025 pays the transport allowance
	assert.Contains(t, out2025, `"transport_allowance": "200000"`)
	assert.Contains(t, out2024, `"transport_allowance": "0"`)
}

// ─── xml ────────────────────────────────────────────────────────────────────

func TestXML_Stdout(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)

	out, _, err := execute(t, "xml", "-f", path, "--date", "2025-06-30", "--number", "7")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"), out)
	assert.Contains(t, out, `periodoFin="2025-06-30"`)
	assert.Contains(t, out, `numeroNomina="7"`)
	assert.Contains(t, out, `<NetoPagar valor="1509620" moneda="COP">`)
}

func TestXML_DefaultsToToday(t *testing.T) {
	pinClock(t, time.Date(2025, 7, 15, 22, 0, 0, 0, time.UTC))
	path := writeFile(t, "fields.json", fieldsJSON)

	out, _, err := execute(t, "xml", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, `periodoFin="2025-07-15"`)
}

func TestXML_WritesFile(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)
	dest := filepath.Join(t.TempDir(), "nomina.xml")

	out, errOut, err := execute(t, "xml", "-f", path, "-o", dest, "--date", "2025-06-30")
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Contains(t, errOut, "Wrote "+dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<NominaElectronica")
}

func TestXML_BadDate(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)

	_, _, err := execute(t, "xml", "-f", path, "--date", "30/06/2025")
	assert.Error(t, err)
}

// ─── pdf ────────────────────────────────────────────────────────────────────

func TestPDF_WritesPayslip(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)
	dest := filepath.Join(t.TempDir(), "desprendible.pdf")

	_, _, err := execute(t, "pdf", "-f", path, "-o", dest, "--date", "2025-06-30")
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDF_RequiresOutput(t *testing.T) {
	path := writeFile(t, "fields.json", fieldsJSON)

	_, _, err := execute(t, "pdf", "-f", path)
	assert.Error(t, err)
}

// ─── constants ──────────────────────────────────────────────────────────────

func TestConstants_Default(t *testing.T) {
	out, _, err := execute(t, "constants")
	require.NoError(t, err)

	assert.Contains(t, out, "preset co-2025")
	assert.Contains(t, out, "$ 1.423.500,00")
	assert.Contains(t, out, "$ 2.847.000,00")
}

func TestConstants_File(t *testing.T) {
	path := writeFile(t, "constants.json", `{"preset": "co-2024", "minimum_wage": "1500000"}`)

	out, _, err := execute(t, "constants", "--constants", path)
	require.NoError(t, err)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "$ 1.500.000,00")
}

func TestConstants_List(t *testing.T) {
	out, _, err := execute(t, "constants", "--list")
	require.NoError(t, err)

	assert.Contains(t, out, "* co-2025")
	assert.Contains(t, out, "  co-2024")
}

func TestConstants_UnknownPreset(t *testing.T) {
	_, _, err := execute(t, "constants", "--preset", "co-1999")
	assert.Error(t, err)
}
