/*
errors.go - Centralized error types

PURPOSE:
  All error types in one place for consistency and discoverability.
  The calculator itself never returns errors; these belong to the
  boundaries around it (field validation, stores, config presets).

ERROR CATEGORIES:
  1. Validation errors - caller-side form checks (FieldError)
  2. Store errors - missing or duplicate records
  3. Config errors - unknown constants presets, malformed dates

USAGE:
  if generic.IsNotFound(err) {
      writeError(w, http.StatusNotFound, "Employee not found", err)
  }
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDocumentNotFound is returned when a stored payroll document doesn't exist.
	ErrDocumentNotFound = errors.New("payroll document not found")

	// ErrDuplicateEmployee is returned when an employee document number is already registered.
	ErrDuplicateEmployee = errors.New("duplicate employee document number")

	// ErrInvalidField is the root of every FieldError.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidDate is returned for dates that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownPreset is returned when a constants preset name is not registered.
	ErrUnknownPreset = errors.New("unknown constants preset")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FieldError reports the first form field that failed validation.
// Message is the human-readable text shown to the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// DateError wraps a date parse failure with the offending value.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q (use YYYY-MM-DD): %v", e.Value, e.Err)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrDuplicateEmployee) ||
		errors.Is(err, ErrUnknownPreset)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrDocumentNotFound)
}
