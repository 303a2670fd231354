package ds

import (
	"container/list"
)

// LinkedHashMap is a map that remembers insertion-order in keys and values fetching.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	elements map[K]*list.Element
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		elements: map[K]*list.Element{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keys = append(keys, key)
	}
	return keys
}

func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		values = append(values, r.hashMap[key])
	}
	return values
}

// Put keeps the original position of an existing key and only replaces its value.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.elements[key]; !existed {
		r.elements[key] = r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r *LinkedHashMap[K, V]) Delete(key K) bool {
	element, existed := r.elements[key]
	if !existed {
		return false
	}
	r.ordering.Remove(element)
	delete(r.elements, key)
	delete(r.hashMap, key)
	return true
}
