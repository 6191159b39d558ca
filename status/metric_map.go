package status

import (
	"sort"
	"sync"
)

// MetricMap maps names to metric cells of type T
// Handlers resolve their cells once at construction; afterwards updates go
// through the cached pointer without touching the map
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Lookup returns the cell for key without creating it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cell, ok := m.cells[key]
	return cell, ok
}

// Get returns the cell for key, allocating a zero cell on first use
func (m *MetricMap[T]) Get(key string) *T {
	if cell, ok := m.Lookup(key); ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok := m.cells[key]; ok {
		return cell
	}
	cell := new(T)
	m.cells[key] = cell
	return cell
}

// Has reports whether key has a cell
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Keys returns the registered names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range visits every cell in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	for _, k := range m.Keys() {
		if cell, ok := m.Lookup(k); ok {
			fn(k, cell)
		}
	}
}

// Count returns the number of cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
