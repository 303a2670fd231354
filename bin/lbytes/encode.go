package lbytes

import (
	"bytes"
	"encoding/binary"
	"math"

	"powers-dict/ds"
)

// Encoder writes the little-endian layout Reader understands. The game never needs us to write a
// bin, so this is what tests build their fixtures with.
type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func EncodeValueU32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) Len() int {
	return e.buf.Len()
}

func (e *Encoder) Raw(bs ...byte) *Encoder {
	e.buf.Write(bs)
	return e
}

func (e *Encoder) U32(values ...uint32) *Encoder {
	for _, value := range values {
		e.buf.Write(EncodeValueU32(value))
	}
	return e
}

func (e *Encoder) I32(values ...int32) *Encoder {
	for _, value := range values {
		e.buf.Write(EncodeValueU32(uint32(value)))
	}
	return e
}

func (e *Encoder) F32(values ...float32) *Encoder {
	for _, value := range values {
		e.buf.Write(EncodeValueU32(math.Float32bits(value)))
	}
	return e
}

func (e *Encoder) Bool(values ...bool) *Encoder {
	for _, value := range values {
		if value {
			e.U32(1)
		} else {
			e.U32(0)
		}
	}
	return e
}

func (e *Encoder) U16(value uint16) *Encoder {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	e.buf.Write(bs)
	return e
}

func (e *Encoder) PascalString(s string) *Encoder {
	e.U16(uint16(len(s)))
	e.buf.WriteString(s)
	return e
}

func (e *Encoder) PascalStringPadded(s string) *Encoder {
	e.PascalString(s)
	consumed := len(s) + 2
	e.buf.Write(ds.Repeat[byte](ds.NearestDivisibleByM(consumed, 4)-consumed, 0))
	return e
}

// Frame writes the body produced by fill, prefixed with its length.
func (e *Encoder) Frame(fill func(body *Encoder)) *Encoder {
	body := NewEncoder()
	fill(body)
	e.U32(uint32(body.Len()))
	e.buf.Write(body.Bytes())
	return e
}

// Zeroes writes n 32-bit zero values, handy for runs of absent strings and empty arrays.
func (e *Encoder) Zeroes(n int) *Encoder {
	for i := 0; i < n; i++ {
		e.U32(0)
	}
	return e
}
