/*
store.go - Persistence interface for employees and generated payroll documents

PURPOSE:
  Defines the interface between the HTTP/CLI layers and the database.
  The payroll core is pure and never touches a store; callers persist
  employees (to pre-fill forms) and the documents they generate.

KEY INTERFACES:
  DocumentStore: employee records + append-only payroll documents

APPEND-ONLY DOCUMENTS:
  A generated payroll document is never modified. Regenerating a payroll
  for the same employee stores a new document with a new ID, so every
  XML that was handed out can be recovered later.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - generic/store/memory.go: In-memory for testing
*/
package generic

import (
	"context"
	"time"
)

// =============================================================================
// RECORDS
// =============================================================================

type EmployeeID string
type DocumentID string

// Employee is the stored employee master data used to pre-fill a payroll form.
type Employee struct {
	ID             EmployeeID
	DocumentType   string // CC, CE, TI, PA
	DocumentNumber string
	Name           string
	Position       string
	ContractType   string
	CostCenter     string
	BaseSalary     Money
	ContractStart  *TimePoint
	CreatedAt      time.Time
}

// PayrollDocument is one generated payroll XML, kept with the figures it was built from.
type PayrollDocument struct {
	ID          DocumentID
	EmployeeID  EmployeeID // empty for ad-hoc documents
	Identifier  string     // employee document number at generation time
	GeneratedAt TimePoint
	NetPay      Money
	XML         []byte
	ResultJSON  []byte
	CreatedAt   time.Time
}

// =============================================================================
// DOCUMENT STORE
// =============================================================================

type DocumentStore interface {
	// SaveEmployee inserts or replaces an employee. A document number already
	// used by a different employee returns ErrDuplicateEmployee.
	SaveEmployee(ctx context.Context, e Employee) error

	// GetEmployee returns ErrEmployeeNotFound when missing.
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)

	// ListEmployees returns employees ordered by name.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// DeleteEmployee removes the employee; stored documents are kept.
	DeleteEmployee(ctx context.Context, id EmployeeID) error

	// SaveDocument appends a generated document. This is the only document write.
	SaveDocument(ctx context.Context, d PayrollDocument) error

	// GetDocument returns ErrDocumentNotFound when missing.
	GetDocument(ctx context.Context, id DocumentID) (PayrollDocument, error)

	// ListDocuments returns an employee's documents, newest first.
	ListDocuments(ctx context.Context, employeeID EmployeeID) ([]PayrollDocument, error)
}
