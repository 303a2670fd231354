package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClassKey(t *testing.T) {
	assert.Equal(t, "@class_blaster", NewClassKey("Blaster").String())
	assert.Equal(t, "@class_peacebringer", NewClassKey("Class_Peacebringer").String())
	assert.Equal(t, "@class_arachnos_soldier", NewClassKey("Arachnos Soldier").String())
}

func TestCharacterAttributes_Fields(t *testing.T) {
	attributes := &CharacterAttributes{}
	fields := attributes.Fields()
	assert.Len(t, fields, CharacterAttributesSize/4)
	assert.Same(t, &attributes.DamageType[0], fields[0])
	assert.Same(t, &attributes.HitPoints, fields[DamageTypeSize])
	assert.Same(t, &attributes.ElusivityBase, fields[len(fields)-1])

	table := &CharacterAttributesTable{}
	assert.Len(t, table.Fields(), CharacterAttributesSize/4)
}

func TestBasePowerSet_AvailableLevel(t *testing.T) {
	set := &BasePowerSet{
		PowerNames: []NameKey{NewNameKey("Melee.Punching.Jab"), NewNameKey("Melee.Punching.Haymaker")},
		Available:  []int32{0, 3},
	}
	level, ok := set.AvailableLevel(NewNameKey("melee.punching.haymaker"))
	assert.True(t, ok)
	assert.Equal(t, int32(4), level)
	_, ok = set.AvailableLevel(NewNameKey("Melee.Punching.Missing"))
	assert.False(t, ok)
}

func TestSpecialAttrib_String(t *testing.T) {
	assert.Equal(t, "Translucency", SpecialAttribFirst.String())
	assert.Equal(t, "ExecutePower", SpecialAttribLast.String())
	assert.Equal(t, "PowerRedirect", SpecialAttribPowerRedirect.String())
	assert.Equal(t, "Character(4)", SpecialAttrib(4).String())
	assert.Equal(t, ModDuration{Kind: ModDurationUntilKilled}, NewModDuration(100000))
	assert.Equal(t, ModDuration{Kind: ModDurationSeconds, Seconds: 2}, NewModDuration(2))
}
