package bvillains

import (
	"github.com/pkg/errors"

	"powers-dict/bin/bframe"
	"powers-dict/model"
)

type Villains = model.Keyed[model.VillainDef]

// DecodeBlock reads villaindef.bin. Definitions without a name are dropped.
func DecodeBlock(d *bframe.Decoder) (*Villains, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*Villains, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "bvillains.DecodeBlock error reading count")
		}
		villains := model.NewKeyed[model.VillainDef]()
		for i := uint32(0); i < count; i++ {
			villain, err := DecodeVillain(d)
			if err != nil {
				return nil, errors.Wrapf(err, "bvillains.DecodeBlock error decoding villain %d of %d", i, count)
			}
			if !villain.Name.IsZero() {
				villains.Put(villain.Name, villain)
			}
		}
		return villains, nil
	})
}

func DecodeVillain(d *bframe.Decoder) (*model.VillainDef, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.VillainDef, error) {
		v := &model.VillainDef{}
		var exclusion, flags uint32
		f := d.Fields().NameKey(&v.Name, &v.CharacterClassName)
		bframe.FieldEnum(f, &v.Gender)
		f.String(&v.Description, &v.GroupDescription, &v.DisplayClassName, &v.AIConfig)
		f.I32(&v.Group)
		bframe.FieldArray(f, &v.Powers, decodePowerNameRef)
		bframe.FieldArray(f, &v.Levels, decodeLevel)
		bframe.FieldEnum(f, &v.Rank)
		f.String(&v.Ally, &v.Gang)
		f.U32(&exclusion)
		f.Bool(&v.IgnoreCombatMods, &v.CopyCreatorMods, &v.IgnoreReduction, &v.CanZone)
		f.I32(&v.SpawnLimit, &v.SpawnLimitMission)
		f.Strings(&v.AdditionalRewards)
		f.String(&v.FavoriteWeapon)
		f.Strings(&v.SkillHPRewards, &v.SkillStatusRewards)
		f.F32(&v.RewardScale)
		f.Strings(&v.PowerTags)
		f.String(&v.SpecialPetPower, &v.FileName)
		f.U32(&v.FileAge)
		bframe.FieldArray(f, &v.PetCommandStrings, decodePetCommandStrings)
		f.I32(&v.PetVisibility, &v.PetCommandability)
		f.String(&v.CustomBadgeStat)
		f.U32(&flags)
		// empty script def
		f.Skip(4)
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "bvillains.DecodeVillain error decoding %s", v.Name)
		}
		v.Exclusion = model.VillainExclusion(exclusion) & model.VillainExclusionMask
		v.Flags = model.VillainDefFlag(flags) & model.VillainDefFlagMask
		return v, nil
	})
}

func decodePowerNameRef(d *bframe.Decoder) (*model.PowerNameRef, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.PowerNameRef, error) {
		ref := &model.PowerNameRef{}
		f := d.Fields().
			NameKey(&ref.PowerCategory, &ref.PowerSet, &ref.Power).
			I32(&ref.Level, &ref.Remove, &ref.DontSetStance)
		return ref, f.Err()
	})
}

func decodeLevel(d *bframe.Decoder) (*model.VillainLevelDef, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.VillainLevelDef, error) {
		level := &model.VillainLevelDef{}
		f := d.Fields().
			I32(&level.Level).
			Strings(&level.DisplayNames, &level.Costumes).
			I32(&level.Experience)
		return level, f.Err()
	})
}

func decodePetCommandStrings(d *bframe.Decoder) (*model.PetCommandStrings, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.PetCommandStrings, error) {
		s := &model.PetCommandStrings{}
		f := d.Fields().Strings(
			&s.Passive,
			&s.Defensive,
			&s.Aggressive,
			&s.AttackTarget,
			&s.AttackNoTarget,
			&s.StayHere,
			&s.UsePower,
			&s.UsePowerNone,
			&s.FollowMe,
			&s.GotoSpot,
			&s.Dismiss,
		)
		return s, f.Err()
	})
}
