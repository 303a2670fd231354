package bframe

import (
	"github.com/pkg/errors"

	"powers-dict/bin/berr"
	"powers-dict/bin/bmsg"
	"powers-dict/bin/bpool"
	"powers-dict/bin/lbytes"
	"powers-dict/model"
)

// Decoder couples a reader with the string pool of its file and the shared message store, which
// is what every field reader beyond plain scalars needs.
type Decoder struct {
	*lbytes.Reader
	Strings  *bpool.StringPool
	Messages *bmsg.MessageStore
}

// Frame is an open length-prefixed struct, see ReadStructLength.
type Frame struct {
	ExpectedBytes uint32
	Begin         uint32
}

func New(reader *lbytes.Reader, strings *bpool.StringPool, messages *bmsg.MessageStore) *Decoder {
	return &Decoder{
		Reader:   reader,
		Strings:  strings,
		Messages: messages,
	}
}

// ReadStructLength reads the declared length of the struct that follows and remembers where its
// body starts.
func (d *Decoder) ReadStructLength() (Frame, error) {
	expectedBytes, err := d.ReadU32()
	if err != nil {
		return Frame{}, err
	}
	return Frame{ExpectedBytes: expectedBytes, Begin: d.Pos()}, nil
}

// VerifyStructLength fails unless exactly the declared number of bytes were consumed since the
// frame was opened.
func (d *Decoder) VerifyStructLength(frame Frame) error {
	read := d.Pos() - frame.Begin
	if read != frame.ExpectedBytes {
		return berr.NewSizeMismatch(frame.ExpectedBytes, read)
	}
	return nil
}

// Framed opens a frame, runs body and verifies the frame.
func Framed[T any](d *Decoder, body func(d *Decoder) (T, error)) (T, error) {
	var zero T
	frame, err := d.ReadStructLength()
	if err != nil {
		return zero, err
	}
	t, err := body(d)
	if err != nil {
		return zero, err
	}
	if err := d.VerifyStructLength(frame); err != nil {
		return zero, err
	}
	return t, nil
}

// Array reads a 32-bit count followed by that many elements.
func Array[T any](d *Decoder, read func(d *Decoder) (T, error)) ([]T, error) {
	count, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	ts := make([]T, 0, min(count, 1024))
	for i := uint32(0); i < count; i++ {
		t, err := read(d)
		if err != nil {
			return nil, errors.Wrapf(err, "bframe.Array error reading element %d of %d", i, count)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// ReadEnum falls back to the enum's default for values it does not know.
func ReadEnum[T model.Enum[T]](d *Decoder) (T, error) {
	value, err := d.ReadU32()
	if err != nil {
		return T(0), err
	}
	e := T(value)
	if !e.IsValid() {
		return e.Default(), nil
	}
	return e, nil
}

func EnumArray[T model.Enum[T]](d *Decoder) ([]T, error) {
	return Array(d, ReadEnum[T])
}

// NameKey reads a pool offset. No message lookup happens, keys are never localized.
func (d *Decoder) NameKey() (model.NameKey, error) {
	offset, err := d.ReadU32()
	if err != nil {
		return model.NameKey{}, err
	}
	s, ok := d.Strings.Get(offset)
	if !ok {
		return model.NameKey{}, nil
	}
	return model.NewNameKey(s), nil
}

// RequiredNameKey is NameKey for the fields records are indexed by.
func (d *Decoder) RequiredNameKey() (model.NameKey, error) {
	key, err := d.NameKey()
	if err != nil {
		return key, err
	}
	if key.IsZero() {
		return key, berr.New(berr.MissingNameKey)
	}
	return key, nil
}

// NameKeys skips entries whose offset is outside the pool. An offset at an empty string is kept.
func (d *Decoder) NameKeys() ([]model.NameKey, error) {
	offsets, err := Array(d, (*Decoder).ReadU32)
	if err != nil {
		return nil, err
	}
	keys := make([]model.NameKey, 0, len(offsets))
	for _, offset := range offsets {
		if s, ok := d.Strings.Get(offset); ok {
			keys = append(keys, model.NewNameKey(s))
		}
	}
	return keys, nil
}

// PoolString reads a pool offset and localizes the string when it is a message key. Absent
// strings are "".
func (d *Decoder) PoolString() (string, error) {
	offset, err := d.ReadU32()
	if err != nil {
		return "", err
	}
	s, ok := d.Strings.Get(offset)
	if !ok {
		return "", nil
	}
	return d.Messages.Localize(s), nil
}

// PoolStrings is NameKeys for localized strings.
func (d *Decoder) PoolStrings() ([]string, error) {
	offsets, err := Array(d, (*Decoder).ReadU32)
	if err != nil {
		return nil, err
	}
	strs := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		if s, ok := d.Strings.Get(offset); ok {
			strs = append(strs, d.Messages.Localize(s))
		}
	}
	return strs, nil
}

func (d *Decoder) Int32s() ([]int32, error) {
	return Array(d, (*Decoder).ReadI32)
}

func (d *Decoder) Float32s() ([]float32, error) {
	return Array(d, (*Decoder).ReadF32)
}

func (d *Decoder) SpecialAttrib() (model.SpecialAttrib, error) {
	value, err := d.ReadI32()
	return model.SpecialAttrib(value), err
}

func (d *Decoder) SpecialAttribs() ([]model.SpecialAttrib, error) {
	return Array(d, (*Decoder).SpecialAttrib)
}

func (d *Decoder) RGBA() (model.RGBA, error) {
	rgba, err := d.ReadRGBA()
	return model.RGBA(rgba), err
}

func (d *Decoder) Vec3() (model.Vec3, error) {
	vec, err := d.ReadVec3()
	return model.Vec3(vec), err
}

// LinkTable is an array of padded pascal strings naming other records.
func (d *Decoder) LinkTable() ([]model.NameKey, error) {
	names, err := Array(d, (*Decoder).ReadPascalStringPadded)
	if err != nil {
		return nil, err
	}
	keys := make([]model.NameKey, 0, len(names))
	for _, name := range names {
		keys = append(keys, model.NewNameKey(name))
	}
	return keys, nil
}
