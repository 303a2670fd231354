package bframe

import (
	"powers-dict/model"
)

// Fields reads a long run of fields and keeps the first error. Once an error is recorded every
// later read is a no-op, so records can be read top to bottom and checked once with Err.
type Fields struct {
	d   *Decoder
	err error
}

func (d *Decoder) Fields() *Fields {
	return &Fields{d: d}
}

func (f *Fields) Err() error {
	return f.err
}

// Do runs read unless an earlier field failed.
func (f *Fields) Do(read func(d *Decoder) error) *Fields {
	if f.err == nil {
		f.err = read(f.d)
	}
	return f
}

func (f *Fields) Skip(n int) *Fields {
	return f.Do(func(d *Decoder) error {
		return d.Skip(n)
	})
}

func (f *Fields) String(dsts ...*string) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).PoolString)
	}
	return f
}

func (f *Fields) Strings(dsts ...*[]string) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).PoolStrings)
	}
	return f
}

func (f *Fields) NameKey(dsts ...*model.NameKey) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).NameKey)
	}
	return f
}

func (f *Fields) NameKeys(dsts ...*[]model.NameKey) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).NameKeys)
	}
	return f
}

func (f *Fields) LinkTable(dsts ...*[]model.NameKey) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).LinkTable)
	}
	return f
}

func (f *Fields) U32(dsts ...*uint32) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).ReadU32)
	}
	return f
}

func (f *Fields) I32(dsts ...*int32) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).ReadI32)
	}
	return f
}

func (f *Fields) F32(dsts ...*float32) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).ReadF32)
	}
	return f
}

func (f *Fields) Bool(dsts ...*bool) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).ReadBool)
	}
	return f
}

func (f *Fields) Int32s(dsts ...*[]int32) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).Int32s)
	}
	return f
}

func (f *Fields) Float32s(dsts ...*[]float32) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).Float32s)
	}
	return f
}

func (f *Fields) SpecialAttrib(dsts ...*model.SpecialAttrib) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).SpecialAttrib)
	}
	return f
}

func (f *Fields) SpecialAttribs(dsts ...*[]model.SpecialAttrib) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).SpecialAttribs)
	}
	return f
}

func (f *Fields) RGBA(dsts ...*model.RGBA) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).RGBA)
	}
	return f
}

func (f *Fields) Vec3(dsts ...*model.Vec3) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, (*Decoder).Vec3)
	}
	return f
}

// FieldValue stores the result of read in dst unless an earlier field failed.
func FieldValue[T any](f *Fields, dst *T, read func(d *Decoder) (T, error)) *Fields {
	return f.Do(func(d *Decoder) error {
		value, err := read(d)
		if err != nil {
			return err
		}
		*dst = value
		return nil
	})
}

func FieldEnum[T model.Enum[T]](f *Fields, dsts ...*T) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, ReadEnum[T])
	}
	return f
}

func FieldEnums[T model.Enum[T]](f *Fields, dsts ...*[]T) *Fields {
	for _, dst := range dsts {
		FieldValue(f, dst, EnumArray[T])
	}
	return f
}

func FieldArray[T any](f *Fields, dst *[]T, read func(d *Decoder) (T, error)) *Fields {
	return FieldValue(f, dst, func(d *Decoder) ([]T, error) {
		return Array(d, read)
	})
}
