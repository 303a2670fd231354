package berr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	ReadError Kind = iota
	StringConversion
	MissingCrypticSig
	WrongFileType
	SizeMismatch
	MissingNameKey
	UnknownParam
)

type (
	// ParseError is the only error kind produced by the bin decoders. ExpectedBytes and ReadBytes
	// are set for SizeMismatch, Param for UnknownParam, Err for ReadError.
	ParseError struct {
		Kind          Kind
		ExpectedBytes uint32
		ReadBytes     uint32
		Param         uint32
		Err           error
	}
)

func (r *ParseError) Error() string {
	switch r.Kind {
	case ReadError:
		return fmt.Sprintf("read error: %v", r.Err)
	case StringConversion:
		return "could not convert string (corrupted bin?)"
	case MissingCrypticSig:
		return "missing Cryptic signature (is this a real bin?)"
	case WrongFileType:
		return "wrong file type encountered (did you copy the wrong bin?)"
	case SizeMismatch:
		return fmt.Sprintf("expected %d bytes in struct, but read %d bytes", r.ExpectedBytes, r.ReadBytes)
	case MissingNameKey:
		return "current object has no name key (corrupted bin?)"
	case UnknownParam:
		return fmt.Sprintf("unknown attrib mod param type %d", r.Param)
	}
	return fmt.Sprintf("unknown parse error kind %d", r.Kind)
}

func (r *ParseError) Unwrap() error {
	return r.Err
}

func NewReadError(err error) error {
	return &ParseError{Kind: ReadError, Err: err}
}

func NewSizeMismatch(expected uint32, read uint32) error {
	return &ParseError{Kind: SizeMismatch, ExpectedBytes: expected, ReadBytes: read}
}

func NewUnknownParam(param uint32) error {
	return &ParseError{Kind: UnknownParam, Param: param}
}

func New(kind Kind) error {
	return &ParseError{Kind: kind}
}

// KindOf digs through wrapped errors for a ParseError.
func KindOf(err error) (Kind, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind, true
	}
	return 0, false
}

// Is lets errors.Is(err, berr.New(kind)) match on the kind alone.
func (r *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return other.Kind == r.Kind
}
