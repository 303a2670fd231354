package bheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/bin/berr"
	"powers-dict/bin/lbytes"
)

func TestDecode(t *testing.T) {
	bs := Encode(lbytes.NewEncoder(), 0xCAFE).Bytes()
	reader := lbytes.NewBytesReader(bs)

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFE), header.BuildCRC)
	assert.Equal(t, FileType, header.FileType)
	assert.Equal(t, MagicNumberBytes, header.MagicNumber)
	assert.Equal(t, 0, reader.Len())
}

func TestDecode_Errors(t *testing.T) {
	bs := lbytes.NewEncoder().Raw([]byte("CrypticX")...).U32(1).PascalString(FileType).Bytes()
	_, err := Decode(lbytes.NewBytesReader(bs))
	kind, ok := berr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, berr.MissingCrypticSig, kind)

	bs = lbytes.NewEncoder().Raw(MagicNumberBytes...).U32(1).PascalString("Parse6").Bytes()
	_, err = Decode(lbytes.NewBytesReader(bs))
	kind, _ = berr.KindOf(err)
	assert.Equal(t, berr.WrongFileType, kind)

	_, err = Decode(lbytes.NewBytesReader(MagicNumberBytes[:3]))
	kind, _ = berr.KindOf(err)
	assert.Equal(t, berr.ReadError, kind)
}
