package slbuild

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Table is an insertion ordered association of unique string keys to values.
// The zero value is an empty table ready for use.
//
// Table enforces add-versus-override semantics: adding an existing key and
// overriding a missing key both fail and leave the table unchanged.
type Table[V any] struct {
	keys   []string
	values map[string]V
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int { return len(t.keys) }

// Contains reports whether key is present in the table.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (v V, ok bool) {
	v, ok = t.values[key]
	return v, ok
}

// Add appends a new entry at the end of the table.
func (t *Table[V]) Add(key string, v V) error {
	return t.Insert(len(t.keys), key, v)
}

// Insert places a new entry at index, shifting following entries back.
// index must be in the range [0, Len()].
func (t *Table[V]) Insert(index int, key string, v V) error {
	if t.Contains(key) {
		return fmt.Errorf("%q: %w", key, ErrDuplicate)
	} else if index < 0 || index > len(t.keys) {
		return fmt.Errorf("insert %q at %d of %d: %w", key, index, len(t.keys), ErrIndexRange)
	}
	if t.values == nil {
		t.values = make(map[string]V)
	}
	t.keys = slices.Insert(t.keys, index, key)
	t.values[key] = v
	return nil
}

// Override replaces the value of an existing entry keeping its position.
func (t *Table[V]) Override(key string, v V) error {
	if !t.Contains(key) {
		return fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	t.values[key] = v
	return nil
}

// Keys returns a copy of the keys in table order.
func (t *Table[V]) Keys() []string {
	return slices.Clone(t.keys)
}

// All iterates over the entries in table order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the table. Values are copied
// shallowly which is a deep copy for value types such as string.
func (t *Table[V]) Clone() Table[V] {
	var c Table[V]
	if len(t.keys) == 0 {
		return c
	}
	c.keys = slices.Clone(t.keys)
	c.values = maps.Clone(t.values)
	return c
}

// Reset removes all entries.
func (t *Table[V]) Reset() {
	t.keys = t.keys[:0]
	clear(t.values)
}
