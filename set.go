package growmap

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Set is the keys-only sibling of Map, sharing the same table core and the
// same growth model. It just doesn't store values, only keys.
type Set[K comparable] struct {
	table[K, struct{}]
}

// Returns a new instance of the set.
func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(opts...)

	return &s
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.get(key)
	return ok
}

// Puts a key in the set. Adding a key that is already present is a no-op.
func (s *Set[K]) Put(key K) {
	s.set(key, struct{}{})
}

// Delete tombstones the key, or returns ErrKeyNotFound.
func (s *Set[K]) Delete(key K) error {
	if !s.delete(key) {
		return ErrKeyNotFound
	}

	return nil
}

// Len returns the number of live keys. Tombstones don't count.
func (s *Set[K]) Len() int {
	return s.len()
}

// Clear resets the set to its initial empty state.
func (s *Set[K]) Clear() {
	s.clear()
}

func (s *Set[K]) Stats() Stats {
	return s.stats()
}

// String renders every occupied slot of the active table in scan order,
// tombstones included.
func (s *Set[K]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, sl := range s.active() {
		if i > 0 {
			_, _ = buf.WriteString(", ")
		}

		if sl.state == slotDeleted {
			_, _ = buf.WriteString("<deleted>")
			continue
		}

		fmt.Fprintf(buf, "%v", sl.key)
	}
	_ = buf.WriteByte('}')

	return buf.String()
}
