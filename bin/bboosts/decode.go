package bboosts

import (
	"github.com/pkg/errors"

	"powers-dict/bin/bframe"
	"powers-dict/model"
)

type BoostSets = model.Keyed[model.BoostSet]

// DecodeBlock reads boostsets.bin. Sets without a name are dropped.
func DecodeBlock(d *bframe.Decoder) (*BoostSets, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*BoostSets, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "bboosts.DecodeBlock error reading count")
		}
		boostSets := model.NewKeyed[model.BoostSet]()
		for i := uint32(0); i < count; i++ {
			boostSet, err := DecodeBoostSet(d)
			if err != nil {
				return nil, errors.Wrapf(err, "bboosts.DecodeBlock error decoding boost set %d of %d", i, count)
			}
			if !boostSet.Name.IsZero() {
				boostSets.Put(boostSet.Name, boostSet)
			}
		}
		return boostSets, nil
	})
}

func DecodeBoostSet(d *bframe.Decoder) (*model.BoostSet, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.BoostSet, error) {
		s := &model.BoostSet{}
		f := d.Fields().
			NameKey(&s.Name).
			String(&s.DisplayName, &s.GroupName).
			Strings(&s.ConversionGroups).
			LinkTable(&s.Powers)
		bframe.FieldArray(f, &s.BoostLists, decodeBoostList)
		bframe.FieldArray(f, &s.Bonuses, decodeBonus)
		f.I32(&s.MinLevel, &s.MaxLevel)
		f.String(&s.StoreProduct)
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "bboosts.DecodeBoostSet error decoding %s", s.Name)
		}
		return s, nil
	})
}

func decodeBoostList(d *bframe.Decoder) (*model.BoostList, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.BoostList, error) {
		list := &model.BoostList{}
		f := d.Fields().LinkTable(&list.Boosts)
		return list, f.Err()
	})
}

func decodeBonus(d *bframe.Decoder) (*model.BoostSetBonus, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.BoostSetBonus, error) {
		bonus := &model.BoostSetBonus{}
		var bonusPower string
		f := d.Fields().
			String(&bonus.DisplayName).
			I32(&bonus.MinBoosts, &bonus.MaxBoosts).
			Strings(&bonus.Requires).
			LinkTable(&bonus.AutoPowers)
		bframe.FieldValue(f, &bonusPower, (*bframe.Decoder).ReadPascalStringPadded)
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "bboosts.decodeBonus error")
		}
		if bonusPower != "" {
			bonus.BonusPower = model.NewNameKey(bonusPower)
		}
		return bonus, nil
	})
}
