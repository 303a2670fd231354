package model

import (
	"powers-dict/ds"
)

type keyedEntry[T any] struct {
	key   NameKey
	value *T
}

// Keyed stores shared handles by NameKey, case-insensitively, in insertion order.
type Keyed[T any] struct {
	entries *ds.LinkedHashMap[string, keyedEntry[T]]
}

func NewKeyed[T any]() *Keyed[T] {
	return &Keyed[T]{
		entries: ds.NewLinkedHashMap[string, keyedEntry[T]](),
	}
}

// Put replaces whatever was stored under the same folded key.
func (r *Keyed[T]) Put(key NameKey, value *T) {
	r.entries.Put(key.Key(), keyedEntry[T]{key: key, value: value})
}

func (r *Keyed[T]) Get(key NameKey) (*T, bool) {
	entry, ok := r.entries.Get(key.Key())
	if !ok {
		return nil, false
	}
	return entry.value, true
}

func (r *Keyed[T]) Len() int {
	return r.entries.Len()
}

func (r *Keyed[T]) Delete(key NameKey) bool {
	return r.entries.Delete(key.Key())
}

func (r *Keyed[T]) Keys() []NameKey {
	entries := r.entries.Values()
	keys := make([]NameKey, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.key)
	}
	return keys
}

func (r *Keyed[T]) Values() []*T {
	entries := r.entries.Values()
	values := make([]*T, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.value)
	}
	return values
}

// Retain drops every entry keep returns false for.
func (r *Keyed[T]) Retain(keep func(key NameKey, value *T) bool) int {
	removed := 0
	for _, entry := range r.entries.Values() {
		if !keep(entry.key, entry.value) {
			r.entries.Delete(entry.key.Key())
			removed++
		}
	}
	return removed
}
