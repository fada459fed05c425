package ir

import "sort"

// OrderedEntry is one key/value pair of an object.
type OrderedEntry struct {
	Key  string
	Node *Node
}

// OrderedMap is the property container of Object nodes. It preserves
// insertion order while supporting keyed lookup independent of position and
// positional lookup over the currently-present entries.
type OrderedMap struct {
	entries []*OrderedEntry
	index   map[string]int
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: map[string]int{}}
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Set inserts at the end when key is new, otherwise replaces the value in
// place at the existing position. It returns the stored entry.
func (m *OrderedMap) Set(key string, node *Node) *OrderedEntry {
	if i, ok := m.index[key]; ok {
		m.entries[i].Node = node
		return m.entries[i]
	}
	e := &OrderedEntry{Key: key, Node: node}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, e)
	return e
}

// Find looks up by key; nil when absent.
func (m *OrderedMap) Find(key string) *OrderedEntry {
	if m == nil {
		return nil
	}
	if i, ok := m.index[key]; ok {
		return m.entries[i]
	}
	return nil
}

// At looks up the i-th entry in insertion order; nil when out of bounds.
func (m *OrderedMap) At(i int) *OrderedEntry {
	if m == nil || i < 0 || i >= len(m.entries) {
		return nil
	}
	return m.entries[i]
}

// Erase removes key, preserving the relative order of the remaining
// entries. It reports whether the key was present.
func (m *OrderedMap) Erase(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// Sort permutes the entries in place with a stable sort.
func (m *OrderedMap) Sort(less func(a, b *OrderedEntry) bool) {
	sort.SliceStable(m.entries, func(i, j int) bool {
		return less(m.entries[i], m.entries[j])
	})
	for i, e := range m.entries {
		m.index[e.Key] = i
	}
}

// Entries exposes the entries in insertion order. The slice is owned by the
// map; callers must not grow or shrink it.
func (m *OrderedMap) Entries() []*OrderedEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

func (m *OrderedMap) Clear() {
	m.entries = nil
	m.index = map[string]int{}
}

func (m *OrderedMap) Clone() *OrderedMap {
	if m == nil {
		return nil
	}
	res := NewOrderedMap()
	for _, e := range m.entries {
		res.Set(e.Key, e.Node.Clone())
	}
	return res
}
