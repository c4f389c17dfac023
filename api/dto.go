/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the stored records from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Payroll:
    ComputeResponse (wraps nomina.Result + summary lines)

  Employee:
    EmployeeDTO, EmployeeRequest

  Documents:
    DocumentDTO

  Constants:
    ConstantsDTO

PAYROLL REQUESTS:
  Payroll endpoints take the flat form field map itself as the body, e.g.
  {"nit": "900123456-7", "salarioBase": 1423500, "diasTrabajados": "30"}.
  Values may be strings or numbers.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - nomina/fields.go: form field ids
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

// =============================================================================
// PAYROLL
// =============================================================================

// ComputeResponse is the result of POST /api/payroll/compute.
type ComputeResponse struct {
	Result  nomina.Result        `json:"result"`
	Summary []nomina.SummaryLine `json:"summary"`
}

// ConstantsDTO shows the reference values the server computes with.
type ConstantsDTO struct {
	Year                         int           `json:"year"`
	MinimumWage                  generic.Money `json:"minimum_wage"`
	TransportAllowance           generic.Money `json:"transport_allowance"`
	TransportThresholdMultiplier string        `json:"transport_threshold_multiplier"`
	TransportThreshold           generic.Money `json:"transport_threshold"`
}

func toConstantsDTO(c nomina.Constants) ConstantsDTO {
	multiplier := c.TransportThresholdMultiplier
	if multiplier.IsZero() {
		multiplier = nomina.DefaultTransportThresholdMultiplier
	}
	return ConstantsDTO{
		Year:                         c.Year,
		MinimumWage:                  c.MinimumWage,
		TransportAllowance:           c.TransportAllowance,
		TransportThresholdMultiplier: multiplier.String(),
		TransportThreshold:           c.TransportThreshold(),
	}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID             string        `json:"id"`
	DocumentType   string        `json:"document_type"`
	DocumentNumber string        `json:"document_number"`
	Name           string        `json:"name"`
	Position       string        `json:"position"`
	ContractType   string        `json:"contract_type"`
	CostCenter     string        `json:"cost_center"`
	BaseSalary     generic.Money `json:"base_salary"`
	ContractStart  string        `json:"contract_start,omitempty"`
	CreatedAt      string        `json:"created_at,omitempty"`
}

// EmployeeRequest is the body of employee create and update calls.
type EmployeeRequest struct {
	ID             string        `json:"id,omitempty"`
	DocumentType   string        `json:"document_type"`
	DocumentNumber string        `json:"document_number"`
	Name           string        `json:"name"`
	Position       string        `json:"position"`
	ContractType   string        `json:"contract_type"`
	CostCenter     string        `json:"cost_center"`
	BaseSalary     generic.Money `json:"base_salary"`
	ContractStart  string        `json:"contract_start,omitempty"` // YYYY-MM-DD
}

func toEmployeeDTO(e generic.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:             string(e.ID),
		DocumentType:   e.DocumentType,
		DocumentNumber: e.DocumentNumber,
		Name:           e.Name,
		Position:       e.Position,
		ContractType:   e.ContractType,
		CostCenter:     e.CostCenter,
		BaseSalary:     e.BaseSalary,
	}
	if e.ContractStart != nil {
		dto.ContractStart = e.ContractStart.String()
	}
	if !e.CreatedAt.IsZero() {
		dto.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

// employeeFields pre-fills the employee part of a payroll form.
func employeeFields(e generic.Employee) nomina.Fields {
	f := nomina.Fields{
		nomina.FieldEmployeeName:   e.Name,
		nomina.FieldDocumentType:   e.DocumentType,
		nomina.FieldDocumentNumber: e.DocumentNumber,
		nomina.FieldPosition:       e.Position,
		nomina.FieldContractType:   e.ContractType,
		nomina.FieldCostCenter:     e.CostCenter,
		nomina.FieldBaseSalary:     e.BaseSalary.String(),
	}
	if e.ContractStart != nil {
		f[nomina.FieldContractStart] = e.ContractStart.String()
	}
	return f
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// DocumentDTO describes a stored payroll document. The XML itself is
// served by GET /api/documents/{id}.
type DocumentDTO struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id,omitempty"`
	Identifier  string          `json:"identifier"`
	GeneratedAt string          `json:"generated_at"`
	NetPay      generic.Money   `json:"net_pay"`
	Result      json.RawMessage `json:"result,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

func toDocumentDTO(d generic.PayrollDocument) DocumentDTO {
	dto := DocumentDTO{
		ID:          string(d.ID),
		EmployeeID:  string(d.EmployeeID),
		Identifier:  d.Identifier,
		GeneratedAt: d.GeneratedAt.String(),
		NetPay:      d.NetPay,
	}
	if len(d.ResultJSON) > 0 {
		dto.Result = json.RawMessage(d.ResultJSON)
	}
	if !d.CreatedAt.IsZero() {
		dto.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
