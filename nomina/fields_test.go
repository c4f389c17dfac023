package nomina_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

func validFields() nomina.Fields {
	return nomina.Fields{
		"nit":                 "900123456-7",
		"razonSocial":         "Comercializadora Andina SAS",
		"nombreEmpleado":      "Laura Gómez",
		"tipoDocumento":       "CC",
		"identificacion":      "1020304050",
		"cargo":               "Analista",
		"tipoContrato":        "indefinido",
		"fechaInicioContrato": "2025-01-01",
		"centroCosto":         "ADM-01",
		"salarioBase":         "1423500",
		"diasTrabajados":      "30",
	}
}

// =============================================================================
// PARSING
// =============================================================================

func TestParseFields_TypedDocument(t *testing.T) {
	f := validFields()
	f["direccion"] = "  Calle 10 # 5-20  "
	f["horasExtras"] = "120000"
	f["libranzas"] = "50000.75"
	f["fechaFinContrato"] = "2025-06-30"
	f["causaTerminacion"] = "sin_justa"

	doc := nomina.ParseFields(f)

	assert.Equal(t, "900123456-7", doc.Employer.TaxID)
	assert.Equal(t, "Calle 10 # 5-20", doc.Employer.Address, "text is trimmed")
	assert.Equal(t, "1020304050", doc.Employee.DocumentNumber)
	assert.Equal(t, "Laura Gómez", doc.Employee.Name)
	assertMoney(t, "1423500", doc.Input.BaseSalary)
	assert.Equal(t, 30, doc.Input.DaysWorked)
	assertMoney(t, "120000", doc.Input.OvertimePay)
	assertMoney(t, "50000.75", doc.Input.LoanDeductions)
	require.NotNil(t, doc.Input.ContractStart)
	require.NotNil(t, doc.Input.ContractEnd)
	assert.Equal(t, "2025-01-01", doc.Input.ContractStart.String())
	assert.Equal(t, "2025-06-30", doc.Input.ContractEnd.String())
	assert.Equal(t, nomina.CauseWithoutJustCause, doc.Input.TerminationCause)
}

func TestParseFields_LenientNumbers(t *testing.T) {
	f := nomina.Fields{
		"salarioBase":    "abc",
		"diasTrabajados": "30.5",
		"propinas":       "",
		"comisiones":     "1,5",
	}

	in := nomina.ParseFields(f).Input

	assert.True(t, in.BaseSalary.IsZero(), "malformed amounts read as zero")
	assert.Equal(t, 30, in.DaysWorked, "days keep the integer part")
	assert.True(t, in.Tips.IsZero())
	assert.True(t, in.Commissions.IsZero())

	in = nomina.ParseFields(nomina.Fields{"diasTrabajados": "treinta"}).Input
	assert.Equal(t, 0, in.DaysWorked)
}

func TestParseFields_BadDatesAreAbsent(t *testing.T) {
	f := validFields()
	f["fechaInicioContrato"] = "01/01/2025"
	f["fechaFinContrato"] = "2025-06-30"

	in := nomina.ParseFields(f).Input

	assert.Nil(t, in.ContractStart)
	assert.NotNil(t, in.ContractEnd)
	assert.Nil(t, nomina.Compute(in, constants2025()).Settlement)
}

func TestParseTerminationCause(t *testing.T) {
	tests := []struct {
		in   string
		want nomina.TerminationCause
	}{
		{"", nomina.CauseNone},
		{"sin_justa", nomina.CauseWithoutJustCause},
		{"without_just_cause", nomina.CauseWithoutJustCause},
		{"con_justa", nomina.CauseWithJustCause},
		{"renuncia", nomina.CauseResignation},
		{"mutuo_acuerdo", nomina.CauseOther},
	}

	for _, tt := range tests {
		got := nomina.ParseTerminationCause(tt.in)
		assert.Equal(t, tt.want, got, "cause %q", tt.in)
		assert.Equal(t, tt.want == nomina.CauseWithoutJustCause, got.OwesIndemnity())
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_AcceptsCompleteForm(t *testing.T) {
	assert.NoError(t, nomina.Validate(validFields()))
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	err := nomina.Validate(nomina.Fields{})

	var fe *generic.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "nit", fe.Field)
	assert.Equal(t, "Por favor, completa el campo 'nit'.", fe.Message)
	assert.True(t, errors.Is(err, generic.ErrInvalidField))
	assert.True(t, generic.IsClientError(err))

	f := validFields()
	delete(f, "cargo")
	f["centroCosto"] = "   "
	require.True(t, errors.As(nomina.Validate(f), &fe))
	assert.Equal(t, "cargo", fe.Field, "fields are checked in form order")
}

func TestValidate_RejectsNonPositiveSalaryOrDays(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		failOn string
	}{
		{"salary not a number", "salarioBase", "mil", "salarioBase"},
		{"zero salary", "salarioBase", "0", "salarioBase"},
		{"negative salary", "salarioBase", "-100", "salarioBase"},
		{"zero days", "diasTrabajados", "0", "diasTrabajados"},
		{"days not a number", "diasTrabajados", "x", "diasTrabajados"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			f[tt.key] = tt.value

			var fe *generic.FieldError
			require.True(t, errors.As(nomina.Validate(f), &fe))
			assert.Equal(t, tt.failOn, fe.Field)
			assert.Equal(t, "Por favor, ingresa valores numéricos válidos (mayores a 0) para salario y días trabajados.", fe.Message)
		})
	}
}

func TestValidate_RejectsMalformedContractDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		field string
	}{
		{"start in dd/mm/yyyy", "01/01/2025", "2025-06-30", "fechaInicioContrato"},
		{"start out of range", "2025-02-30", "", "fechaInicioContrato"},
		{"end in dd/mm/yyyy", "2025-01-01", "30/06/2025", "fechaFinContrato"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN a complete form with a malformed contract date
			f := validFields()
			f["fechaInicioContrato"] = tt.start
			f["fechaFinContrato"] = tt.end
			f["causaTerminacion"] = "sin_justa"

			// WHEN validated
			err := nomina.Validate(f)

			// THEN the date field is reported before any settlement is computed
			var fe *generic.FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, "Por favor, ingresa una fecha válida (AAAA-MM-DD) en el campo '"+tt.field+"'.", fe.Message)
			assert.True(t, generic.IsClientError(err))
		})
	}
}

func TestValidate_ValidContractDatesYieldSettlement(t *testing.T) {
	f := validFields()
	f["fechaFinContrato"] = "2025-06-30"
	f["causaTerminacion"] = "sin_justa"

	require.NoError(t, nomina.Validate(f))
	doc := nomina.ParseFields(f)
	r := nomina.Compute(doc.Input, constants2025())
	require.NotNil(t, r.Settlement)
	assert.Equal(t, 180, r.Settlement.DaysToSettle)
}

func TestValidate_DoesNotGateCompute(t *testing.T) {
	// Compute accepts whatever ParseFields produced, even from an invalid form.
	f := nomina.Fields{"salarioBase": "1000000", "diasTrabajados": "0"}
	require.Error(t, nomina.Validate(f))

	r := nomina.Compute(nomina.ParseFields(f).Input, constants2025())
	assert.True(t, r.RegularPay.IsZero())
	assertMoney(t, "200000", r.TransportAllowance)
}
