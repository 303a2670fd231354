package battribs

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"powers-dict/bin/bframe"
	"powers-dict/bin/bmsg"
	"powers-dict/ds"
	"powers-dict/model"
)

// Decode reads attrib_names.bin and adds the localized name of every CharacterAttributes offset,
// which the file itself does not carry.
func Decode(d *bframe.Decoder) (*model.AttribNames, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribNames, error) {
		names := &model.AttribNames{}
		f := d.Fields()
		for _, dst := range []*[]*model.AttribName{
			&names.Damage,
			&names.Defense,
			&names.Boost,
			&names.Group,
			&names.Mode,
			&names.Elusivity,
			&names.StackKey,
		} {
			bframe.FieldArray(f, dst, decodeAttribName)
		}
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "battribs.Decode error")
		}
		names.AttrNames = AttrNames(d.Messages)
		return names, nil
	})
}

func decodeAttribName(d *bframe.Decoder) (*model.AttribName, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribName, error) {
		name := &model.AttribName{}
		f := d.Fields().String(&name.Name, &name.DisplayName, &name.IconName)
		return name, f.Err()
	})
}

// AttrNames maps each CharacterAttributes offset to its localized name. Offsets without a message
// key or without a message are left out.
func AttrNames(messages *bmsg.MessageStore) map[uint32]string {
	offsets := ds.MakeRange[uint32](0, model.CharacterAttributesSize, 4)
	attrNames := map[uint32]string{}
	for _, pair := range lo.Zip2(offsets, attrMessageKeys()) {
		if pair.B == "" {
			continue
		}
		if message, ok := messages.Message(pair.B); ok {
			attrNames[pair.A] = message
		}
	}
	return attrNames
}

func attrMessageKeys() []string {
	keys := make([]string, 0, model.CharacterAttributesSize/4)
	for i := 0; i < model.DamageTypeSize; i++ {
		keys = append(keys, fmt.Sprintf("AttrDamageType[%d]", i))
	}
	keys = append(keys, "AttrHitPoints", "AttrAbsorb", "AttrEndurance", "AttrInsight", "AttrRage", "AttrToHit")
	for i := 0; i < model.DefenseTypeSize; i++ {
		keys = append(keys, fmt.Sprintf("AttrDefenseType[%d]", i))
	}
	keys = append(
		keys,
		"AttrDefense", "AttrSpeedRunning", "AttrSpeedFlying", "AttrSpeedSwimming", "AttrSpeedJumping",
		"AttrJumpHeight", "AttrMovementControl", "AttrMovementFriction", "AttrStealth",
		"AttrStealthRadius", "AttrStealthRadiusPlayer", "AttrPerceptionRadius", "AttrRegeneration",
		"AttrRecovery", "AttrInsightRecovery", "AttrThreatLevel", "AttrTaunt", "AttrPlacate",
		"AttrConfused", "AttrAfraid", "AttrTerrorized", "AttrHeld", "AttrImmobilized", "AttrStunned",
		"AttrSleep", "AttrFly", "AttrJumppack", "AttrTeleport", "AttrUntouchable", "AttrIntangible",
		"AttrOnlyAffectsSelf", "AttrExperienceGain", "AttrInfluenceGain", "AttrPrestigeGain",
		"AttrNullBool", "AttrKnockup", "AttrKnock", "AttrRepel", "AttrAccuracy", "AttrRadius",
		"AttrArc", "AttrRange", "AttrTimeToActivate", "AttrRechargeTime", "AttrInterruptTime",
		"AttrEnduranceDiscount",
		// insight discount and meter have no message
		"", "",
	)
	// the client has no elusivity names, defense ones are used instead
	for i := 0; i < model.ElusivitySize; i++ {
		keys = append(keys, fmt.Sprintf("AttrDefenseType[%d]", i))
	}
	return append(keys, "AttrDefense")
}
