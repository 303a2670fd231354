package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{0, 4, 8}, MakeRange(0, 12, 4))
	assert.Equal(t, []uint32{0, 4, 8, 12}, MakeRange[uint32](0, 13, 4))
}

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 8, NearestDivisibleByM(5, 4))
	assert.Equal(t, 8, NearestDivisibleByM(8, 4))
	assert.Equal(t, 0, NearestDivisibleByM(0, 4))
}
