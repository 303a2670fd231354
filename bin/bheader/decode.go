package bheader

import (
	"bytes"

	"powers-dict/bin/berr"
	"powers-dict/bin/lbytes"
)

type (
	Header struct {
		MagicNumber []byte `json:"magic_number"`
		BuildCRC    uint32 `json:"build_crc"`
		FileType    string `json:"file_type"`
	}
)

const (
	FileType = "Parse7"
)

var MagicNumberBytes = []byte("CrypticS")

// expect wraps read so that anything but a value equal to want fails with kind.
func expect[T any](read lbytes.ReadFunction, want T, equal func(T, T) bool, kind berr.Kind) lbytes.ReadFunction {
	return func() (any, error) {
		value, err := read()
		if err != nil {
			return nil, err
		}
		if got, ok := value.(T); !ok || !equal(got, want) {
			return nil, berr.New(kind)
		}
		return value, nil
	}
}

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return expect(
		lbytes.CreateNBytesReadFunction(reader, len(MagicNumberBytes)),
		MagicNumberBytes,
		bytes.Equal,
		berr.MissingCrypticSig,
	)
}

func createFileTypeReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return expect(
		lbytes.CreatePascalStringReadFunction(reader),
		FileType,
		func(a, b string) bool { return a == b },
		berr.WrongFileType,
	)
}

// Decode checks the signature every parser bin starts with. The build CRC is kept for
// display only.
func Decode(reader *lbytes.Reader) (*Header, error) {
	headerInstructions := []lbytes.Instruction{
		{Key: "magic_number", ReadFunction: createMagicNumberReadFunction(reader)},
		{Key: "build_crc", ReadFunction: lbytes.CreateU32ReadFunction(reader)},
		{Key: "file_type", ReadFunction: createFileTypeReadFunction(reader)},
	}

	return lbytes.ExecuteInstructions[Header](headerInstructions)
}

// Encode writes a valid header, fixtures use it.
func Encode(encoder *lbytes.Encoder, buildCRC uint32) *lbytes.Encoder {
	return encoder.
		Raw(MagicNumberBytes...).
		U32(buildCRC).
		PascalString(FileType)
}
