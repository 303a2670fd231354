package bpowercats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/bin/berr"
	"powers-dict/bin/bframe"
	"powers-dict/bin/bmsg"
	"powers-dict/bin/bpool"
	"powers-dict/bin/lbytes"
	"powers-dict/model"
)

func TestDecodeBlock(t *testing.T) {
	pool := lbytes.NewEncoder()
	offsets := bpool.Encode(pool, "Melee", "P77", "Melee.Punching", "Melee.Kicking")
	strings, err := bpool.Decode(lbytes.NewBytesReader(pool.Bytes()))
	require.NoError(t, err)
	messages := bmsg.NewMessageStore()
	messages.Messages = []string{"Melee Attacks"}
	messages.MessageIDs["P77"] = &bmsg.TextMessage{}

	data := lbytes.NewEncoder().Frame(func(block *lbytes.Encoder) {
		block.U32(1).Frame(func(body *lbytes.Encoder) {
			body.U32(0, offsets[0], offsets[1], 0, 0)
			body.U32(2, offsets[2], offsets[3])
		})
	})
	categories, err := DecodeBlock(bframe.New(lbytes.NewBytesReader(data.Bytes()), strings, messages))
	require.NoError(t, err)

	melee, ok := categories.Get(model.NewNameKey("MELEE"))
	require.True(t, ok)
	assert.Equal(t, "Melee Attacks", melee.DisplayName)
	assert.Equal(
		t,
		[]model.NameKey{model.NewNameKey("Melee.Punching"), model.NewNameKey("Melee.Kicking")},
		melee.PowerSetNames,
	)
}

func TestDecodePowerCategory_MissingName(t *testing.T) {
	data := lbytes.NewEncoder().Frame(func(body *lbytes.Encoder) {
		body.U32(0, 0, 0, 0, 0, 0)
	})
	d := bframe.New(lbytes.NewBytesReader(data.Bytes()), bpool.New(nil), bmsg.NewMessageStore())

	_, err := DecodePowerCategory(d)
	kind, ok := berr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, berr.MissingNameKey, kind)
}
