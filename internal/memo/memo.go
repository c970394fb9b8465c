package memo

// Map is a lazily filled map from K to V.
// The zero value is not usable; create one with New.
type Map[K comparable, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]V),
	}
}

// GetOrCreate returns the stored value for key, or calls create, stores its
// result and returns it. create is called at most once per key.
func (m *Map[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v
	}
	m.misses++
	v := create()
	m.entries[key] = v
	return v
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Stats returns the number of GetOrCreate calls that found an existing
// entry and the number that had to create one.
func (m *Map[K, V]) Stats() (hits, misses uint64) {
	return m.hits, m.misses
}
