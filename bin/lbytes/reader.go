package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"powers-dict/bin/berr"
	"powers-dict/ds"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Pos is the number of bytes consumed so far.
func (b *Reader) Pos() uint32 {
	return uint32(b.Size() - int64(b.Len()))
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, berr.NewReadError(err)
	}
	return bs, nil
}

func (b *Reader) Skip(n int) error {
	_, err := b.ReadBytes(n)
	return err
}

func (b *Reader) ReadU32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadI32() (int32, error) {
	result, err := b.ReadU32()
	return int32(result), err
}

func (b *Reader) ReadU16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadF32() (float32, error) {
	result, err := b.ReadU32()
	return math.Float32frombits(result), err
}

// ReadBool reads a 32-bit integer, anything other than zero is true.
func (b *Reader) ReadBool() (bool, error) {
	result, err := b.ReadU32()
	return result != 0, err
}

// ReadRGBA reads four 32-bit channels and keeps the low byte of each.
func (b *Reader) ReadRGBA() ([4]uint8, error) {
	rgba := [4]uint8{}
	for i := range rgba {
		channel, err := b.ReadU32()
		if err != nil {
			return rgba, err
		}
		rgba[i] = uint8(channel)
	}
	return rgba, nil
}

func (b *Reader) ReadVec3() ([3]float32, error) {
	vec := [3]float32{}
	for i := range vec {
		f, err := b.ReadF32()
		if err != nil {
			return vec, err
		}
		vec[i] = f
	}
	return vec, nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", berr.New(berr.StringConversion)
	}
	return string(bs), nil
}

func (b *Reader) ReadPascalString() (string, error) {
	length, err := b.ReadU16()
	if err != nil {
		return "", err
	}
	return b.ReadString(int(length))
}

// ReadPascalStringPadded also consumes the padding that keeps the stream 4-byte aligned,
// the 16-bit length prefix included.
func (b *Reader) ReadPascalStringPadded() (string, error) {
	s, err := b.ReadPascalString()
	if err != nil {
		return "", err
	}
	consumed := len(s) + 2
	if err := b.Skip(ds.NearestDivisibleByM(consumed, 4) - consumed); err != nil {
		return "", err
	}
	return s, nil
}
