/*
handlers.go - HTTP API handlers for the payroll service

PURPOSE:
  Exposes the payroll calculator, the XML serializer and the payslip
  report via REST API. Handles HTTP request/response, JSON serialization,
  and delegates to the nomina package.

ENDPOINTS:
  Payroll:
    POST   /api/payroll/compute        Validate + compute, returns result and summary
    POST   /api/payroll/xml            Electronic payroll XML download
    POST   /api/payroll/pdf            Printable payslip
    GET    /api/constants              Reference values in use

  Employees:
    GET    /api/employees              List employees
    POST   /api/employees              Create employee
    GET    /api/employees/{id}         Get employee
    PUT    /api/employees/{id}         Update employee
    DELETE /api/employees/{id}         Delete employee
    GET    /api/employees/{id}/fields  Payroll form pre-filled from the employee
    GET    /api/employees/{id}/documents Generated documents, newest first

  Documents:
    GET    /api/documents/{id}         Stored XML

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: employees and generated documents
  - Constants: reference values for the payroll year
  - Clock: the only source of wall time (fills the XML generation date)

REQUEST FLOW:
  1. Decode the flat field map
  2. Validate (first missing field wins)
  3. Compute (pure)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Duplicate employee document number
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hellzyr/Nominer/factory"
	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
	"github.com/Hellzyr/Nominer/report"
)

const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     generic.DocumentStore
	Constants nomina.Constants
	Logger    *zap.Logger

	// Clock returns the current time. Tests pin it.
	Clock func() time.Time
	// NewID generates employee and document IDs.
	NewID func() string
}

// NewHandler creates a handler. A nil logger falls back to the global zap logger.
func NewHandler(store generic.DocumentStore, constants nomina.Constants, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	return &Handler{
		Store:     store,
		Constants: constants,
		Logger:    logger.Named("api"),
		Clock:     time.Now,
		NewID:     uuid.NewString,
	}
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// payroll is one validated and computed form.
type payroll struct {
	doc    nomina.Document
	result nomina.Result
}

// computePayroll decodes, validates and computes the request form. It writes
// the error response itself and returns false when the request is rejected.
func (h *Handler) computePayroll(w http.ResponseWriter, r *http.Request, endpoint string) (payroll, bool) {
	fields, err := decodeFields(r)
	if err != nil {
		payrollsComputed.WithLabelValues(endpoint, "invalid").Inc()
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return payroll{}, false
	}

	if err := nomina.Validate(fields); err != nil {
		payrollsComputed.WithLabelValues(endpoint, "invalid").Inc()
		writeFieldError(w, err)
		return payroll{}, false
	}

	doc := nomina.ParseFields(fields)
	result := nomina.Compute(doc.Input, h.Constants)

	payrollsComputed.WithLabelValues(endpoint, "ok").Inc()
	netPayPesos.Observe(float64(result.NetPay.Rounded()))
	if result.Settlement != nil {
		settlementsComputed.Inc()
	}

	h.Logger.Debug("payroll computed",
		zap.String("endpoint", endpoint),
		zap.String("identification", doc.Employee.DocumentNumber),
		zap.String("net_pay", result.NetPay.String()),
		zap.Bool("settlement", result.Settlement != nil),
	)
	return payroll{doc: doc, result: result}, true
}

// Compute returns the computed payroll and its display summary.
// POST /api/payroll/compute
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	p, ok := h.computePayroll(w, r, "compute")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ComputeResponse{
		Result:  p.result,
		Summary: nomina.Summary(p.result),
	})
}

// GenerateXML returns the electronic payroll document as a download.
// POST /api/payroll/xml?save=1&employee_id=...&number=...
func (h *Handler) GenerateXML(w http.ResponseWriter, r *http.Request) {
	p, ok := h.computePayroll(w, r, "xml")
	if !ok {
		return
	}

	generatedAt := generic.FromTime(h.Clock())
	serializer := nomina.Serializer{GeneratedAt: generatedAt, Number: r.URL.Query().Get("number")}
	out, err := serializer.Serialize(p.doc, p.result)
	if err != nil {
		h.Logger.Error("failed to serialize payroll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate XML", err)
		return
	}

	if isTrue(r.URL.Query().Get("save")) {
		id, err := h.saveDocument(r, p, generatedAt, out)
		if err != nil {
			h.writeStoreError(w, "Failed to store payroll document", err)
			return
		}
		w.Header().Set("X-Document-ID", id)
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", "attachment; filename="+nomina.FileName(p.doc))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// GeneratePDF returns the printable payslip.
// POST /api/payroll/pdf
func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	p, ok := h.computePayroll(w, r, "pdf")
	if !ok {
		return
	}

	out, err := report.Payslip(p.doc, p.result, generic.FromTime(h.Clock()))
	if err != nil {
		h.Logger.Error("failed to render payslip", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate payslip", err)
		return
	}

	name := strings.TrimSuffix(nomina.FileName(p.doc), ".xml") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// GetConstants returns the reference values in use.
// GET /api/constants
func (h *Handler) GetConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toConstantsDTO(h.Constants))
}

func (h *Handler) saveDocument(r *http.Request, p payroll, generatedAt generic.TimePoint, xml []byte) (string, error) {
	ctx := r.Context()
	employeeID := generic.EmployeeID(r.URL.Query().Get("employee_id"))
	if employeeID != "" {
		if _, err := h.Store.GetEmployee(ctx, employeeID); err != nil {
			return "", err
		}
	}

	resultJSON, err := json.Marshal(p.result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	doc := generic.PayrollDocument{
		ID:          generic.DocumentID(h.NewID()),
		EmployeeID:  employeeID,
		Identifier:  p.doc.Employee.DocumentNumber,
		GeneratedAt: generatedAt,
		NetPay:      p.result.NetPay,
		XML:         xml,
		ResultJSON:  resultJSON,
		CreatedAt:   h.Clock().UTC(),
	}
	if err := h.Store.SaveDocument(ctx, doc); err != nil {
		return "", err
	}

	documentsStored.Inc()
	h.Logger.Info("payroll document stored",
		zap.String("document_id", string(doc.ID)),
		zap.String("employee_id", string(employeeID)),
		zap.String("identification", doc.Identifier),
	)
	return string(doc.ID), nil
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		h.writeStoreError(w, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), generic.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeStoreError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// CreateEmployee creates a new employee. The ID is generated unless given;
// a given ID that is already taken is a conflict.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		req.ID = h.NewID()
	} else if _, err := h.Store.GetEmployee(r.Context(), generic.EmployeeID(req.ID)); err == nil {
		h.writeStoreError(w, "Employee already exists", fmt.Errorf("%w: id %s", generic.ErrDuplicateEmployee, req.ID))
		return
	} else if !generic.IsNotFound(err) {
		h.writeStoreError(w, "Failed to get employee", err)
		return
	}
	h.saveEmployee(w, r, req, http.StatusCreated, h.Clock().UTC())
}

// UpdateEmployee replaces an existing employee.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := generic.EmployeeID(chi.URLParam(r, "id"))
	existing, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, "Failed to get employee", err)
		return
	}

	var req EmployeeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	req.ID = string(existing.ID)
	h.saveEmployee(w, r, req, http.StatusOK, existing.CreatedAt)
}

func (h *Handler) saveEmployee(w http.ResponseWriter, r *http.Request, req EmployeeRequest, status int, createdAt time.Time) {
	if strings.TrimSpace(req.DocumentNumber) == "" {
		writeFieldError(w, &generic.FieldError{Field: "document_number", Message: "document_number is required"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeFieldError(w, &generic.FieldError{Field: "name", Message: "name is required"})
		return
	}

	emp := generic.Employee{
		ID:             generic.EmployeeID(req.ID),
		DocumentType:   strings.TrimSpace(req.DocumentType),
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		Name:           strings.TrimSpace(req.Name),
		Position:       strings.TrimSpace(req.Position),
		ContractType:   strings.TrimSpace(req.ContractType),
		CostCenter:     strings.TrimSpace(req.CostCenter),
		BaseSalary:     req.BaseSalary,
		CreatedAt:      createdAt,
	}
	if req.ContractStart != "" {
		start, err := generic.ParseDate(req.ContractStart)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid contract_start format (use YYYY-MM-DD)", err)
			return
		}
		emp.ContractStart = &start
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		h.writeStoreError(w, "Failed to save employee", err)
		return
	}
	writeJSON(w, status, toEmployeeDTO(emp))
}

// DeleteEmployee removes an employee. Their documents are kept.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmployee(r.Context(), generic.EmployeeID(chi.URLParam(r, "id"))); err != nil {
		h.writeStoreError(w, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEmployeeFields returns the payroll form fields known from the employee record.
// GET /api/employees/{id}/fields
func (h *Handler) GetEmployeeFields(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), generic.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeStoreError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, employeeFields(emp))
}

// ListEmployeeDocuments returns the employee's generated documents, newest first.
// GET /api/employees/{id}/documents
func (h *Handler) ListEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Store.ListDocuments(r.Context(), generic.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeStoreError(w, "Failed to list documents", err)
		return
	}

	dtos := make([]DocumentDTO, len(docs))
	for i, d := range docs {
		dtos[i] = toDocumentDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// DOCUMENT HANDLERS
// =============================================================================

// GetDocument serves a stored payroll XML exactly as it was generated.
// GET /api/documents/{id}
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	d, err := h.Store.GetDocument(r.Context(), generic.DocumentID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeStoreError(w, "Failed to get document", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", "attachment; filename=nomina_"+d.Identifier+".xml")
	w.WriteHeader(http.StatusOK)
	w.Write(d.XML)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeFields(r *http.Request) (nomina.Fields, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return factory.ParseFields(body)
}

func isTrue(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeFieldError reports a validation failure with the message meant for the user.
func writeFieldError(w http.ResponseWriter, err error) {
	var fe *generic.FieldError
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fe.Message, Field: fe.Field})
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid input", err)
}

// writeStoreError maps store errors to HTTP statuses.
func (h *Handler) writeStoreError(w http.ResponseWriter, message string, err error) {
	switch {
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, generic.ErrDuplicateEmployee):
		writeError(w, http.StatusConflict, message, err)
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		h.Logger.Error(message, zap.Error(err))
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
