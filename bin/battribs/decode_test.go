package battribs

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

func newMessages() *bmsg.MessageStore {
	messages := bmsg.NewMessageStore()
	messages.Messages = []string{"Smashing", "Hit Points", "Melee Defense", "Defense"}
	messages.MessageIDs["AttrDamageType[0]"] = &bmsg.TextMessage{MessageIndex: 0}
	messages.MessageIDs["AttrHitPoints"] = &bmsg.TextMessage{MessageIndex: 1}
	messages.MessageIDs["AttrDefenseType[1]"] = &bmsg.TextMessage{MessageIndex: 2}
	messages.MessageIDs["AttrDefense"] = &bmsg.TextMessage{MessageIndex: 3}
	return messages
}

func TestAttrNames(t *testing.T) {
	attrNames := AttrNames(newMessages())

	assert.Equal(t, "Smashing", attrNames[0])
	assert.Equal(t, "Hit Points", attrNames[80])
	assert.Equal(t, "Melee Defense", attrNames[108])
	assert.Equal(t, "Defense", attrNames[184])
	// elusivity reuses the defense names
	assert.Equal(t, "Melee Defense", attrNames[380])
	assert.Equal(t, "Defense", attrNames[456])
	assert.Len(t, attrNames, 6)
}

func TestAttrMessageKeys(t *testing.T) {
	keys := attrMessageKeys()

	require.Len(t, keys, model.CharacterAttributesSize/4)
	assert.Equal(t, "AttrNullBool", keys[320/4])
	assert.Equal(t, "", keys[368/4])
	assert.Equal(t, "", keys[372/4])
	assert.Equal(t, "AttrDefenseType[0]", keys[376/4])
}

func TestDecode(t *testing.T) {
	pool := lbytes.NewEncoder()
	offsets := bpool.Encode(pool, "Smashing_Dmg", "Smashing", "Icon_Smash")
	strings, err := bpool.Decode(lbytes.NewBytesReader(pool.Bytes()))
	require.NoError(t, err)

	data := lbytes.NewEncoder().Frame(func(body *lbytes.Encoder) {
		body.U32(1).Frame(func(name *lbytes.Encoder) {
			name.U32(offsets...)
		})
		body.Zeroes(6)
	})
	names, err := Decode(bframe.New(lbytes.NewBytesReader(data.Bytes()), strings, newMessages()))
	require.NoError(t, err)

	require.Len(t, names.Damage, 1)
	assert.Equal(t, &model.AttribName{Name: "Smashing_Dmg", DisplayName: "Smashing", IconName: "Icon_Smash"}, names.Damage[0])
	assert.Empty(t, names.StackKey)

	name, ok := names.AttribDisplayName(80)
	require.True(t, ok)
	assert.Equal(t, "Hit Points", name)
}
