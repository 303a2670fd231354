package bpowersets

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

func newDecoder(t *testing.T, fill func(offsets []uint32) *lbytes.Encoder) *bframe.Decoder {
	pool := lbytes.NewEncoder()
	offsets := bpool.Encode(pool, "Melee.Punching", "Melee.Punching.Jab", "Melee.Punching.Haymaker")
	strings, err := bpool.Decode(lbytes.NewBytesReader(pool.Bytes()))
	require.NoError(t, err)
	return bframe.New(lbytes.NewBytesReader(fill(offsets).Bytes()), strings, bmsg.NewMessageStore())
}

func encodePowerSet(body *lbytes.Encoder, fullName uint32, powerNames ...uint32) {
	body.U32(0, fullName, 0)
	body.U32(0)
	body.Bool(false)
	body.Zeroes(4)
	body.Zeroes(2)
	body.Zeroes(3)
	body.Zeroes(1)
	body.Zeroes(1)
	body.U32(2)
	body.Bool(true, true)
	body.I32(0)
	body.Zeroes(1)
	body.U32(uint32(len(powerNames))).U32(powerNames...)
	body.U32(2).I32(0, 5)
	body.Zeroes(5)
	body.I32(0)
}

func TestDecodeBlock(t *testing.T) {
	d := newDecoder(t, func(offsets []uint32) *lbytes.Encoder {
		return lbytes.NewEncoder().Frame(func(block *lbytes.Encoder) {
			block.U32(2)
			block.Frame(func(body *lbytes.Encoder) {
				encodePowerSet(body, offsets[0], offsets[1], offsets[2])
			})
			block.Frame(func(body *lbytes.Encoder) {
				encodePowerSet(body, 0, offsets[1])
			})
		})
	})

	powerSets, err := DecodeBlock(d)
	require.NoError(t, err)
	require.Equal(t, 1, powerSets.Len())

	punching, ok := powerSets.Get(model.NewNameKey("melee.punching"))
	require.True(t, ok)
	assert.Equal(t, model.ShowPowerAlways, punching.ShowInInventory)
	assert.Equal(
		t,
		[]model.NameKey{model.NewNameKey("Melee.Punching.Jab"), model.NewNameKey("Melee.Punching.Haymaker")},
		punching.PowerNames,
	)

	level, ok := punching.AvailableLevel(model.NewNameKey("Melee.Punching.Haymaker"))
	require.True(t, ok)
	assert.Equal(t, int32(6), level)
}

func TestDecodePowerSet_MissingPowerName(t *testing.T) {
	d := newDecoder(t, func(offsets []uint32) *lbytes.Encoder {
		return lbytes.NewEncoder().Frame(func(body *lbytes.Encoder) {
			encodePowerSet(body, offsets[0], offsets[1], 0)
		})
	})

	_, err := DecodePowerSet(d)
	kind, ok := berr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, berr.MissingNameKey, kind)
}
