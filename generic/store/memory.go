// Package store provides DocumentStore implementations.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Hellzyr/Nominer/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees map[generic.EmployeeID]generic.Employee
	documents map[generic.DocumentID]generic.PayrollDocument
	order     []generic.DocumentID // insertion order
}

var _ generic.DocumentStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		employees: make(map[generic.EmployeeID]generic.Employee),
		documents: make(map[generic.DocumentID]generic.PayrollDocument),
	}
}

func (m *Memory) SaveEmployee(_ context.Context, e generic.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.employees {
		if id != e.ID && existing.DocumentNumber == e.DocumentNumber {
			return generic.ErrDuplicateEmployee
		}
	}
	m.employees[e.ID] = e
	return nil
}

func (m *Memory) GetEmployee(_ context.Context, id generic.EmployeeID) (generic.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.employees[id]
	if !ok {
		return generic.Employee{}, generic.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]generic.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]generic.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *Memory) DeleteEmployee(_ context.Context, id generic.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return generic.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

// SaveDocument appends a document. Append-only.
func (m *Memory) SaveDocument(_ context.Context, d generic.PayrollDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documents[d.ID]; ok {
		return fmt.Errorf("payroll document %s already exists", d.ID)
	}
	m.order = append(m.order, d.ID)
	m.documents[d.ID] = d
	return nil
}

func (m *Memory) GetDocument(_ context.Context, id generic.DocumentID) (generic.PayrollDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.documents[id]
	if !ok {
		return generic.PayrollDocument{}, generic.ErrDocumentNotFound
	}
	return d, nil
}

func (m *Memory) ListDocuments(_ context.Context, employeeID generic.EmployeeID) ([]generic.PayrollDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []generic.PayrollDocument
	for i := len(m.order) - 1; i >= 0; i-- {
		d := m.documents[m.order[i]]
		if d.EmployeeID == employeeID {
			result = append(result, d)
		}
	}
	return result, nil
}
