package bpowersets

import (
	"github.com/pkg/errors"

	"powers-dict/bin/bframe"
	"powers-dict/model"
)

type PowerSets = model.Keyed[model.BasePowerSet]

// DecodeBlock reads powersets.bin. Sets without a full name are dropped.
func DecodeBlock(d *bframe.Decoder) (*PowerSets, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*PowerSets, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "bpowersets.DecodeBlock error reading count")
		}
		powerSets := model.NewKeyed[model.BasePowerSet]()
		for i := uint32(0); i < count; i++ {
			powerSet, err := DecodePowerSet(d)
			if err != nil {
				return nil, errors.Wrapf(err, "bpowersets.DecodeBlock error decoding power set %d of %d", i, count)
			}
			if !powerSet.FullName.IsZero() {
				powerSets.Put(powerSet.FullName, powerSet)
			}
		}
		return powerSets, nil
	})
}

func DecodePowerSet(d *bframe.Decoder) (*model.BasePowerSet, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.BasePowerSet, error) {
		s := &model.BasePowerSet{}
		f := d.Fields().
			String(&s.SourceFile).
			NameKey(&s.FullName).
			String(&s.Name)
		bframe.FieldEnum(f, &s.System)
		f.Bool(&s.IsShared)
		f.String(&s.DisplayName, &s.DisplayHelp, &s.DisplayShortHelp, &s.IconName)
		f.Strings(&s.CostumeKeys, &s.CostumeParts)
		f.String(&s.AccountRequires, &s.AccountTooltip, &s.AccountProduct)
		f.Strings(&s.SetBuyRequires)
		f.String(&s.SetBuyRequiresFailedText)
		bframe.FieldEnum(f, &s.ShowInInventory)
		f.Bool(&s.ShowInManage, &s.ShowInInfo)
		f.I32(&s.SpecializeAt)
		f.Strings(&s.SpecializeRequires)
		bframe.FieldArray(f, &s.PowerNames, (*bframe.Decoder).RequiredNameKey)
		f.Int32s(
			&s.Available,
			&s.AIMaxLevel,
			&s.AIMinRankCon,
			&s.AIMaxRankCon,
			&s.MinDifficulty,
			&s.MaxDifficulty,
		)
		f.I32(&s.ForceLevelBought)
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "bpowersets.DecodePowerSet error decoding %s", s.FullName)
		}
		return s, nil
	})
}
