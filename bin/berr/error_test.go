package berr

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := errors.Wrap(NewSizeMismatch(12, 13), "bpowers.DecodePower error")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, SizeMismatch, kind)
	assert.Contains(t, err.Error(), "expected 12 bytes in struct, but read 13 bytes")

	_, ok = KindOf(io.EOF)
	assert.False(t, ok)
}

func TestParseError_Is(t *testing.T) {
	err := errors.Wrap(NewReadError(io.ErrUnexpectedEOF), "outer")

	assert.True(t, errors.Is(err, New(ReadError)))
	assert.False(t, errors.Is(err, New(WrongFileType)))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
