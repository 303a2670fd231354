package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 1)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 2)

	assert.Equal(t, map[string]any{"abc": 2}, lhm.hashMap)
	assert.Equal(t, 1, lhm.Len())
}

func TestLinkedHashMap_Delete(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()
	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("c", 3)

	assert.True(t, lhm.Delete("b"))
	assert.False(t, lhm.Delete("b"))

	_, ok := lhm.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c"}, lhm.Keys())
	assert.Equal(t, []int{1, 3}, lhm.Values())
}
