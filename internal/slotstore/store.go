// Package slotstore implements the sparse, signed-integer-keyed storage
// backing a Micron VM's slots.
package slotstore

import (
	"fmt"
	"sort"
)

// LimitError indicates that a Set would exceed a Store's configured Limit.
type LimitError struct {
	Key   int
	Limit int
}

func (err LimitError) Error() string {
	return fmt.Sprintf("slot limit of %v exceeded by write to %v", err.Limit, err.Key)
}

// Store is an unbounded, sparsely-populated map from a signed integer key to
// a value of type V. Reads of absent keys report ok=false rather than
// materializing an entry.
type Store[V any] struct {
	values map[int]V

	// Limit bounds the number of distinct keys that may be resident at
	// once; zero means unbounded. Overwriting an already-set key never
	// counts against Limit.
	Limit int
}

// New returns an empty Store.
func New[V any]() *Store[V] {
	return &Store[V]{values: make(map[int]V)}
}

// Get returns the value at key, and whether it was set.
func (s *Store[V]) Get(key int) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key has been written.
func (s *Store[V]) Has(key int) bool {
	_, ok := s.values[key]
	return ok
}

// Set writes v at key, allocating the underlying map on first use.
// Returns a LimitError if this would grow the store past its Limit.
func (s *Store[V]) Set(key int, v V) error {
	if s.values == nil {
		s.values = make(map[int]V)
	}
	if s.Limit > 0 {
		if _, exists := s.values[key]; !exists && len(s.values) >= s.Limit {
			return LimitError{Key: key, Limit: s.Limit}
		}
	}
	s.values[key] = v
	return nil
}

// Delete removes key, if present.
func (s *Store[V]) Delete(key int) {
	delete(s.values, key)
}

// Len returns the number of distinct keys currently set.
func (s *Store[V]) Len() int { return len(s.values) }

// Keys returns all set keys in ascending order.
func (s *Store[V]) Keys() []int {
	keys := make([]int, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// firstUnsetScanLimit bounds the linear scan performed by FirstUnset so that
// a store with no gap below any plausible program's slot usage cannot spin
// forever; it is far above any realistic slot count.
const firstUnsetScanLimit = 1 << 24

// FirstUnset returns the smallest non-negative key that has not been set.
// ok is false if no such key exists within the scan limit.
func (s *Store[V]) FirstUnset() (key int, ok bool) {
	for k := 0; k < firstUnsetScanLimit; k++ {
		if _, exists := s.values[k]; !exists {
			return k, true
		}
	}
	return 0, false
}
