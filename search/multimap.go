package search

// Multimap is an ordered, duplicate-preserving multi-valued mapping. Keys
// keep first-insertion order; values keep insertion order per key, and two
// identical insertions yield two entries, not one.
type Multimap[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

// NewMultimap returns an empty multimap.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{values: make(map[K][]V)}
}

// Put appends a value under the key.
func (m *Multimap[K, V]) Put(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Get returns the values stored under the key, in insertion order. The
// returned slice is shared; callers must not mutate it.
func (m *Multimap[K, V]) Get(key K) []V {
	return m.values[key]
}

// Keys returns the keys in first-insertion order.
func (m *Multimap[K, V]) Keys() []K {
	return m.keys
}

// Len returns the total number of entries across all keys.
func (m *Multimap[K, V]) Len() int {
	n := 0
	for _, vs := range m.values {
		n += len(vs)
	}
	return n
}
