package lbytes

import (
	"bytes"
)

type (
	// Reader reads the little-endian primitives of parser bins. Pos counts from the start of
	// the file, which is what frame checks compare against.
	Reader struct {
		bytes.Reader
	}

	// Instruction names one field of a flat record, see ExecuteInstructions.
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
