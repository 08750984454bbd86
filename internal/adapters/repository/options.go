// Package repository defines the record store interface and errors.
package repository

// defaultInitialCapacity sizes the collection maps at creation.
const defaultInitialCapacity = 1024

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity pre-sizes the collection maps.
func WithInitialCapacity(capacity int) Option {
	return func(s *MemStore) {
		if capacity > 0 {
			s.initialCapacity = capacity
		}
	}
}
