package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	stack := NewStack[string]()
	assert.Equal(t, 0, stack.Len())

	stack.Push("Melee")
	stack.Push("Melee.Punching")
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "Melee.Punching", stack.Peek())

	assert.Equal(t, "Melee.Punching", stack.Pop())
	assert.Equal(t, "Melee", stack.Peek())
	assert.Equal(t, 1, stack.Len())

	assert.Panics(t, func() {
		stack.Pop()
		stack.Peek()
	})
}
