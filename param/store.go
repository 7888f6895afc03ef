package param

import "github.com/elliotchance/orderedmap/v2"

// Entry is a single parameter value. Every entry can be read both as a float and as an int.
type Entry struct {
	Key   Key
	Float float32
	Int   int32
}

// Store is an in-memory parameter table. Entries keep the order they were first set in, and decoded tables
// are applied in name order, so dumps of a store are stable. A Store is not safe for concurrent writes.
type Store struct {
	entries *orderedmap.OrderedMap[uint64, Entry]
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: orderedmap.NewOrderedMap[uint64, Entry]()}
}

// Set sets a float parameter. The int view of the parameter is the truncated value.
func (s *Store) Set(k Key, v float32) {
	s.entries.Set(k.Hash(), Entry{Key: k, Float: v, Int: int32(v)})
}

// SetInt sets an int parameter.
func (s *Store) SetInt(k Key, v int32) {
	s.entries.Set(k.Hash(), Entry{Key: k, Float: float32(v), Int: v})
}

// Lookup returns the entry for k and whether it exists.
func (s *Store) Lookup(k Key) (Entry, bool) {
	return s.entries.Get(k.Hash())
}

// Float returns the float value of k, or 0 if the parameter does not exist.
func (s *Store) Float(k Key) float32 {
	e, _ := s.entries.Get(k.Hash())
	return e.Float
}

// Int returns the int value of k, or 0 if the parameter does not exist.
func (s *Store) Int(k Key) int32 {
	e, _ := s.entries.Get(k.Hash())
	return e.Int
}

// Len returns the amount of parameters in the store.
func (s *Store) Len() int {
	return s.entries.Len()
}

// Entries returns all entries in insertion order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, s.entries.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		entries = append(entries, el.Value)
	}
	return entries
}

// Merge copies every entry of other into s, overwriting existing values.
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}
	for el := other.entries.Front(); el != nil; el = el.Next() {
		s.entries.Set(el.Key, el.Value)
	}
}

// Clone returns a copy of the store.
func (s *Store) Clone() *Store {
	c := NewStore()
	c.Merge(s)
	return c
}
