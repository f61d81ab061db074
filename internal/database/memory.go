// server/internal/database/memory.go
package database

import (
	"context"
	"sync"

	"fleet-maintenance-api-server/internal/models"
)

// memoryCollection keeps rows in process memory. Each instance owns its data.
type memoryCollection[T any] struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	rows   map[int64]T
}

func newMemoryCollection[T any]() *memoryCollection[T] {
	return &memoryCollection[T]{nextID: 1, rows: make(map[int64]T)}
}

func (m *memoryCollection[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *memoryCollection[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[id]
	return row, ok, nil
}

func (m *memoryCollection[T]) Create(ctx context.Context, build func(id int64) T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	row := build(id)
	m.rows[id] = row
	m.order = append(m.order, id)
	return row, nil
}

func (m *memoryCollection[T]) Update(ctx context.Context, id int64, apply func(*T)) (T, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	apply(&row)
	m.rows[id] = row
	return row, true, nil
}

func (m *memoryCollection[T]) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type memoryBudget struct {
	mu     sync.RWMutex
	amount float64
}

func (b *memoryBudget) Get(ctx context.Context) (float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.amount, nil
}

func (b *memoryBudget) Set(ctx context.Context, amount float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.amount = amount
	return nil
}

// NewMemoryRepository returns an empty, isolated in-memory repository.
func NewMemoryRepository(annualBudget float64) *Repository {
	return &Repository{
		Trucks:      newMemoryCollection[models.Truck](),
		Providers:   newMemoryCollection[models.Provider](),
		Drivers:     newMemoryCollection[models.Driver](),
		Orders:      newMemoryCollection[models.WorkOrder](),
		Documents:   newMemoryCollection[models.Document](),
		Expenses:    newMemoryCollection[models.Expense](),
		Maintenance: newMemoryCollection[models.MaintenanceProgram](),
		Users:       newMemoryCollection[models.User](),
		Sales:       newMemoryCollection[models.MonthlySale](),
		Budget:      &memoryBudget{amount: annualBudget},
	}
}
