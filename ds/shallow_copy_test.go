package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShallowCopy(t *testing.T) {
	original := make([]int, 2, 8)
	copied := ShallowCopy(original)
	copied = append(copied, 3)
	copied[0] = 1

	assert.Equal(t, []int{0, 0}, original)
	assert.Equal(t, []int{1, 0, 3}, copied)
	assert.Nil(t, ShallowCopy[int](nil))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0}, Repeat[byte](3, 0))
	assert.Empty(t, Repeat(0, "x"))
}
