package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameKey_Equal(t *testing.T) {
	assert.True(t, NewNameKey("Foo.Bar").Equal(NewNameKey("foo.bar")))
	assert.Equal(t, NewNameKey("Foo.Bar").Key(), NewNameKey("FOO.BAR").Key())
	assert.Equal(t, "Foo.Bar", NewNameKey("Foo.Bar").String())
	assert.False(t, NewNameKey("Foo.Bar").Equal(NewNameKey("Foo.Baz")))
}

func TestNameKey_Segments(t *testing.T) {
	key := NewNameKeyFromParts("Pets", "Summon", "Attack")
	assert.Equal(t, []string{"Pets", "Summon", "Attack"}, key.Split())
	assert.Equal(t, "Pets.Summon", key.Parent().String())
	assert.True(t, NewNameKey("Pets").Parent().IsZero())
	assert.False(t, key.IsWildcard())
	assert.True(t, NewNameKey("Pets.Summon.*").IsWildcard())
}

func TestNameKey_PartialMatch(t *testing.T) {
	key := NewNameKey("Blaster_Ranged.Sonic_Attack")
	assert.True(t, key.PartialMatch("SONIC"))
	assert.False(t, key.PartialMatch("fire"))
}

func TestNameKey_Text(t *testing.T) {
	var key NameKey
	assert.NoError(t, key.UnmarshalText([]byte("Melee.Punching")))
	assert.True(t, key.Equal(NewNameKey("melee.punching")))
	text, err := key.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Melee.Punching", string(text))
}

func TestNameKey_OnlyASCIIFolds(t *testing.T) {
	assert.False(t, NewNameKey("Straße").Equal(NewNameKey("STRASSE")))
	assert.False(t, NewNameKey("\u212a").Equal(NewNameKey("k")))
	assert.False(t, NewNameKey("É").Equal(NewNameKey("é")))
	assert.True(t, NewNameKey("Straße").Equal(NewNameKey("STRAße")))
	assert.Equal(t, "straße.k", NewNameKey("STRAße.K").Key())
}
