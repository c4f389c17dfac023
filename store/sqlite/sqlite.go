/*
Package sqlite provides a SQLite-backed implementation of generic.DocumentStore.

PURPOSE:
  Persists employee master data (used to pre-fill payroll forms) and every
  generated payroll document. The payroll calculation never touches the
  database; only the HTTP and CLI layers do.

APPEND-ONLY ENFORCEMENT:
  Payroll documents are never modified:
  - No UPDATE statements on payroll_documents
  - No DELETE statements on payroll_documents
  - Regenerating a payroll inserts a new row

KEY TABLES:
  employees:          Employee records, unique by document number
  payroll_documents:  Generated XML plus the result it was built from

INDEXES:
  - idx_employees_document_number: One employee per identification number
  - idx_documents_employee: Document history per employee

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's own locking.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  the writer.

USAGE:
  store, err := sqlite.New("./data/nominer.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/Hellzyr/Nominer/generic"
)

// Store implements generic.DocumentStore using SQLite.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

var _ generic.DocumentStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Employees
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		document_type TEXT NOT NULL,
		document_number TEXT NOT NULL,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		cost_center TEXT NOT NULL,
		base_salary TEXT NOT NULL,
		contract_start TEXT,
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_document_number
		ON employees(document_number);
	CREATE INDEX IF NOT EXISTS idx_employees_name
		ON employees(name);

	-- Payroll documents (append-only)
	CREATE TABLE IF NOT EXISTS payroll_documents (
		id TEXT PRIMARY KEY,
		employee_id TEXT,
		identifier TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		net_pay TEXT NOT NULL,
		xml BLOB NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_documents_employee
		ON payroll_documents(employee_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or replaces an employee.
func (s *Store) SaveEmployee(ctx context.Context, e generic.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	query := `
		INSERT INTO employees
		(id, document_type, document_number, name, position, contract_type,
		 cost_center, base_salary, contract_start, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_type = excluded.document_type,
			document_number = excluded.document_number,
			name = excluded.name,
			position = excluded.position,
			contract_type = excluded.contract_type,
			cost_center = excluded.cost_center,
			base_salary = excluded.base_salary,
			contract_start = excluded.contract_start
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.DocumentType,
		e.DocumentNumber,
		e.Name,
		e.Position,
		e.ContractType,
		e.CostCenter,
		e.BaseSalary.Value.String(),
		nullDate(e.ContractStart),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return generic.ErrDuplicateEmployee
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

const employeeColumns = `id, document_type, document_number, name, position, contract_type,
	cost_center, base_salary, contract_start, created_at`

// GetEmployee retrieves an employee by ID.
func (s *Store) GetEmployee(ctx context.Context, id generic.EmployeeID) (generic.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return generic.Employee{}, generic.ErrEmployeeNotFound
	}
	if err != nil {
		return generic.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns all employees ordered by name.
func (s *Store) ListEmployees(ctx context.Context) ([]generic.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []generic.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeleteEmployee removes an employee. Their documents are kept.
func (s *Store) DeleteEmployee(ctx context.Context, id generic.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return generic.ErrEmployeeNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (generic.Employee, error) {
	var e generic.Employee
	var baseSalary, createdAt string
	var contractStart sql.NullString

	err := row.Scan(&e.ID, &e.DocumentType, &e.DocumentNumber, &e.Name, &e.Position,
		&e.ContractType, &e.CostCenter, &baseSalary, &contractStart, &createdAt)
	if err != nil {
		return generic.Employee{}, err
	}

	e.BaseSalary = generic.NewMoneyFromDecimal(generic.MustParseDecimal(baseSalary))
	if contractStart.Valid {
		e.ContractStart = generic.ParseOptionalDate(contractStart.String)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// =============================================================================
// PAYROLL DOCUMENTS
// =============================================================================

// SaveDocument appends a generated payroll document.
func (s *Store) SaveDocument(ctx context.Context, d generic.PayrollDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	query := `
		INSERT INTO payroll_documents
		(id, employee_id, identifier, generated_at, net_pay, xml, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		d.ID,
		nullString(string(d.EmployeeID)),
		d.Identifier,
		d.GeneratedAt.String(),
		d.NetPay.Value.String(),
		d.XML,
		string(d.ResultJSON),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save payroll document: %w", err)
	}
	return nil
}

const documentColumns = `id, employee_id, identifier, generated_at, net_pay, xml, result_json, created_at`

// GetDocument retrieves a payroll document by ID.
func (s *Store) GetDocument(ctx context.Context, id generic.DocumentID) (generic.PayrollDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM payroll_documents WHERE id = ?", id)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return generic.PayrollDocument{}, generic.ErrDocumentNotFound
	}
	if err != nil {
		return generic.PayrollDocument{}, fmt.Errorf("failed to get payroll document: %w", err)
	}
	return d, nil
}

// ListDocuments returns an employee's documents, newest first.
func (s *Store) ListDocuments(ctx context.Context, employeeID generic.EmployeeID) ([]generic.PayrollDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM payroll_documents WHERE employee_id = ? ORDER BY rowid DESC",
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll documents: %w", err)
	}
	defer rows.Close()

	var docs []generic.PayrollDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func scanDocument(row scanner) (generic.PayrollDocument, error) {
	var d generic.PayrollDocument
	var employeeID sql.NullString
	var generatedAt, netPay, resultJSON, createdAt string

	err := row.Scan(&d.ID, &employeeID, &d.Identifier, &generatedAt, &netPay, &d.XML, &resultJSON, &createdAt)
	if err != nil {
		return generic.PayrollDocument{}, err
	}

	d.EmployeeID = generic.EmployeeID(employeeID.String)
	if tp, err := generic.ParseDate(generatedAt); err == nil {
		d.GeneratedAt = tp
	}
	d.NetPay = generic.NewMoneyFromDecimal(generic.MustParseDecimal(netPay))
	d.ResultJSON = []byte(resultJSON)
	d.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return d, nil
}

// =============================================================================
// UTILITIES
// =============================================================================

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullDate(tp *generic.TimePoint) sql.NullString {
	if tp == nil {
		return sql.NullString{}
	}
	return nullString(tp.String())
}

func isUniqueConstraintError(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
