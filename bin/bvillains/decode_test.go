package bvillains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/bin/bframe"
	"powers-dict/bin/bmsg"
	"powers-dict/bin/bpool"
	"powers-dict/bin/lbytes"
	"powers-dict/model"
)

func TestDecodeBlock(t *testing.T) {
	pool := lbytes.NewEncoder()
	offsets := bpool.Encode(pool, "Pets_Henchman", "Class_Minion_Pets", "Pets", "Summon", "*")
	strings, err := bpool.Decode(lbytes.NewBytesReader(pool.Bytes()))
	require.NoError(t, err)

	data := lbytes.NewEncoder().Frame(func(block *lbytes.Encoder) {
		block.U32(1).Frame(func(body *lbytes.Encoder) {
			body.U32(offsets[0], offsets[1])
			body.U32(2)
			body.Zeroes(4)
			body.I32(0)
			body.U32(1).Frame(func(ref *lbytes.Encoder) {
				ref.U32(offsets[2], offsets[3], offsets[4])
				ref.I32(0, 0, 0)
			})
			body.U32(1).Frame(func(level *lbytes.Encoder) {
				level.I32(1).Zeroes(2).I32(10)
			})
			body.U32(1)
			body.Zeroes(2)
			body.U32(0xFF)
			body.Bool(false, false, false, true)
			body.I32(0, 0)
			body.Zeroes(1)
			body.Zeroes(1)
			body.Zeroes(2)
			body.F32(1)
			body.Zeroes(1)
			body.Zeroes(2)
			body.U32(0)
			body.U32(0)
			body.I32(0, 0)
			body.U32(0)
			body.U32(0xFF)
			body.U32(0)
		})
	})
	villains, err := DecodeBlock(bframe.New(lbytes.NewBytesReader(data.Bytes()), strings, bmsg.NewMessageStore()))
	require.NoError(t, err)

	villain, ok := villains.Get(model.NewNameKey("pets_henchman"))
	require.True(t, ok)
	assert.Equal(t, "Class_Minion_Pets", villain.CharacterClassName.String())
	assert.Equal(t, model.VillainExclusionMask, villain.Exclusion)
	assert.Equal(t, model.VillainDefFlagMask, villain.Flags)
	assert.True(t, villain.CanZone)
	require.Len(t, villain.Powers, 1)
	assert.True(t, villain.Powers[0].FullPowerName().IsWildcard())
	assert.Equal(t, "Pets.Summon", villain.Powers[0].PowerSetName().String())
	require.Len(t, villain.Levels, 1)
	assert.Equal(t, int32(10), villain.Levels[0].Experience)
}
