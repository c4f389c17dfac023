package nomina

import (
	"fmt"

	"github.com/Hellzyr/Nominer/generic"
)

// requiredFields lists the mandatory form fields in the order the form shows them.
// Validation reports the first one missing.
var requiredFields = []string{
	FieldEmployerTaxID,
	FieldEmployerName,
	FieldEmployeeName,
	FieldDocumentType,
	FieldDocumentNumber,
	FieldPosition,
	FieldContractType,
	FieldContractStart,
	FieldCostCenter,
	FieldBaseSalary,
	FieldDaysWorked,
}

// dateFields must be YYYY-MM-DD when present. A missing contract start is
// reported as a missing required field instead.
var dateFields = []string{FieldContractStart, FieldContractEnd}

const invalidSalaryOrDaysMessage = "Por favor, ingresa valores numéricos válidos (mayores a 0) para salario y días trabajados."

// Validate performs the caller-side checks that must pass before a payroll
// is generated. It returns a *generic.FieldError for the first problem:
// a missing required field, a contract date that is not YYYY-MM-DD, or a
// base salary / days worked that is not a positive number. Compute does not call Validate.
func Validate(f Fields) error {
	for _, key := range requiredFields {
		if f.text(key) == "" {
			return &generic.FieldError{
				Field:   key,
				Message: fmt.Sprintf("Por favor, completa el campo '%s'.", key),
			}
		}
	}

	for _, key := range dateFields {
		if v := f.text(key); v != "" {
			if _, err := generic.ParseDate(v); err != nil {
				return &generic.FieldError{
					Field:   key,
					Message: fmt.Sprintf("Por favor, ingresa una fecha válida (AAAA-MM-DD) en el campo '%s'.", key),
				}
			}
		}
	}

	salary := generic.MustParseDecimal(f.text(FieldBaseSalary))
	if !salary.IsPositive() {
		return &generic.FieldError{Field: FieldBaseSalary, Message: invalidSalaryOrDaysMessage}
	}
	if f.integer(FieldDaysWorked) <= 0 {
		return &generic.FieldError{Field: FieldDaysWorked, Message: invalidSalaryOrDaysMessage}
	}
	return nil
}
