package growmap

import (
	"errors"
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// ErrKeyNotFound is returned by Get and Delete when no entry matches the key.
var ErrKeyNotFound = errors.New("growmap: key not found")

// Map is a map-like data structure which reproduces the memory-growth model
// of the CPython dictionary: entries live in a small fixed table until
// occupancy crosses two thirds of the fill ceiling, then move to a larger
// table whose ceiling doubles on every growth. Deleted slots are tombstoned
// and recycled, never compacted.
//
// There is no bucket dispatch - every operation is a linear scan of the
// active table matching on the stored hash, so entries whose keys collide
// under the configured hash function alias to a single entry. Scan order is
// insertion order with recycled slots keeping their old position.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new instance of the map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Len returns the number of live entries. Tombstones don't count.
func (m *Map[K, V]) Len() int {
	return m.len()
}

// Get returns the value stored for the key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return m.emptyV, ErrKeyNotFound
	}

	return v, nil
}

// GetDefault returns the value stored for the key, falling back to def on a
// miss. A zero-valued def counts as no default, and the miss surfaces as
// ErrKeyNotFound.
func (m *Map[K, V]) GetDefault(key K, def V) (V, error) {
	v, ok := m.get(key)
	if ok {
		return v, nil
	}

	if isZeroValue(def) {
		return m.emptyV, ErrKeyNotFound
	}

	return def, nil
}

// Set stores the value for the key, overwriting in place when the key is
// already present. Inserting a new key may grow the map.
func (m *Map[K, V]) Set(key K, value V) {
	m.set(key, value)
}

// Delete tombstones the entry for the key, or returns ErrKeyNotFound.
func (m *Map[K, V]) Delete(key K) error {
	if !m.delete(key) {
		return ErrKeyNotFound
	}

	return nil
}

// Clear resets the map to its initial empty state, dropping both tables.
func (m *Map[K, V]) Clear() {
	m.clear()
}

func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}

// String renders every occupied slot of the active table in scan order,
// tombstones included.
func (m *Map[K, V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, s := range m.active() {
		if i > 0 {
			_, _ = buf.WriteString(", ")
		}

		if s.state == slotDeleted {
			_, _ = buf.WriteString("<deleted>")
			continue
		}

		fmt.Fprintf(buf, "%v: %v", s.key, s.value)
	}
	_ = buf.WriteByte('}')

	return buf.String()
}
