package bpool

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"

	"powers-dict/bin/berr"
	"powers-dict/bin/lbytes"
	"powers-dict/ds"
)

// StringPool is the NUL-separated string blob following the header of most bins. Fields refer to
// strings by their byte offset into it.
type StringPool struct {
	bytes []byte
}

func New(bs []byte) *StringPool {
	return &StringPool{bytes: bs}
}

func (p *StringPool) Len() int {
	return len(p.bytes)
}

// Get returns the string starting at offset. Offset 0 is reserved for "no string", anything out
// of bounds or not UTF-8 is also absent.
func (p *StringPool) Get(offset uint32) (string, bool) {
	if offset == 0 || int(offset) >= len(p.bytes) {
		return "", false
	}
	tail := p.bytes[offset:]
	end := bytes.IndexByte(tail, 0)
	if end < 0 {
		end = len(tail)
	}
	if !utf8.Valid(tail[:end]) {
		return "", false
	}
	return string(tail[:end]), true
}

// Decode reads the declared length, the blob and its 4-byte alignment padding.
func Decode(reader *lbytes.Reader) (*StringPool, error) {
	length, err := reader.ReadU32()
	if err != nil {
		return nil, errors.Wrap(err, "bpool.Decode error reading length")
	}
	begin := reader.Pos()
	bs, err := reader.ReadBytes(int(length))
	if err != nil {
		return nil, errors.Wrap(err, "bpool.Decode error reading strings")
	}
	padding := ds.NearestDivisibleByM(int(length), 4) - int(length)
	if err := reader.Skip(padding); err != nil {
		return nil, errors.Wrap(err, "bpool.Decode error skipping padding")
	}
	if read := reader.Pos() - begin; read != length+uint32(padding) {
		return nil, berr.NewSizeMismatch(length+uint32(padding), read)
	}
	if len(bs) > 0 && (bs[0] != 0 || bs[len(bs)-1] != 0) {
		return nil, berr.New(berr.StringConversion)
	}
	return New(bs), nil
}

// Encode lays strings out the way Decode expects and returns the offset of each one.
func Encode(encoder *lbytes.Encoder, strings ...string) []uint32 {
	blob := []byte{0}
	offsets := make([]uint32, 0, len(strings))
	for _, s := range strings {
		offsets = append(offsets, uint32(len(blob)))
		blob = append(blob, s...)
		blob = append(blob, 0)
	}
	encoder.U32(uint32(len(blob)))
	encoder.Raw(blob...)
	encoder.Raw(ds.Repeat[byte](ds.NearestDivisibleByM(len(blob), 4)-len(blob), 0)...)
	return offsets
}
