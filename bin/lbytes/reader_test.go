package lbytes

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/bin/berr"
)

func TestBytesReader_ReadI32(t *testing.T) {
	reader := Reader{
		Reader: *bytes.NewReader(
			[]byte{
				3, 1, 4, 3,
				12, 34, 56, 78,
			},
		),
	}

	resultInt1, err := reader.ReadI32()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := reader.ReadI32()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)
	assert.Equal(t, uint32(8), reader.Pos())
}

func TestBytesReader_Scalars(t *testing.T) {
	bs := NewEncoder().
		Bool(true).
		U32(7).
		F32(1.5).
		U16(513).
		U32(0x1FF, 2, 3, 4).
		F32(1, 2, 3).
		Bytes()
	reader := NewBytesReader(bs)

	b, err := reader.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = reader.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	f, err := reader.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	u16, err := reader.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(513), u16)

	rgba, err := reader.ReadRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0xFF, 2, 3, 4}, rgba)

	vec, err := reader.ReadVec3()
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 2, 3}, vec)

	assert.Equal(t, 0, reader.Len())
}

func TestBytesReader_ReadPascalString(t *testing.T) {
	bs := NewEncoder().
		PascalStringPadded("Parse7").
		PascalStringPadded("").
		PascalString("abc").
		Bytes()
	// 2 + 6 rounds to 8, 2 + 0 pads to 4, 2 + 3 is not padded
	assert.Equal(t, 8+4+5, len(bs))

	reader := NewBytesReader(bs)
	s, err := reader.ReadPascalStringPadded()
	require.NoError(t, err)
	assert.Equal(t, "Parse7", s)

	s, err = reader.ReadPascalStringPadded()
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = reader.ReadPascalString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestBytesReader_Errors(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2})
	_, err := reader.ReadU32()
	kind, ok := berr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, berr.ReadError, kind)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	reader = NewBytesReader(NewEncoder().U16(2).Raw(0xff, 0xfe).Bytes())
	_, err = reader.ReadPascalString()
	kind, _ = berr.KindOf(err)
	assert.Equal(t, berr.StringConversion, kind)
}

func TestEncoder_Frame(t *testing.T) {
	bs := NewEncoder().
		Frame(func(body *Encoder) {
			body.U32(1, 2)
		}).
		Bytes()

	reader := NewBytesReader(bs)
	length, err := reader.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(8), length)
}

func TestExecuteInstructions(t *testing.T) {
	type pair struct {
		Event   int32  `json:"event"`
		Seconds uint32 `json:"seconds"`
		Always  bool   `json:"always"`
	}
	reader := NewBytesReader(NewEncoder().I32(-3).U32(10).Bool(true).Bytes())

	result, err := ExecuteInstructions[pair](
		[]Instruction{
			{"event", CreateI32ReadFunction(reader)},
			{"seconds", CreateU32ReadFunction(reader)},
			{"always", CreateBoolReadFunction(reader)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, pair{Event: -3, Seconds: 10, Always: true}, *result)
}

func TestExecuteInstructions_BytesAndStrings(t *testing.T) {
	type tagged struct {
		Tag  []byte `json:"tag"`
		Name string `json:"name"`
	}
	reader := NewBytesReader(NewEncoder().Raw('a', 'b', 'c').PascalString("Parse7").Bytes())

	result, err := ExecuteInstructions[tagged](
		[]Instruction{
			{"tag", CreateNBytesReadFunction(reader, 3)},
			{"name", CreatePascalStringReadFunction(reader)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, tagged{Tag: []byte("abc"), Name: "Parse7"}, *result)
	assert.Equal(t, 0, reader.Len())
}
