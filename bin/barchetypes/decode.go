package barchetypes

import (
	"strings"

	"github.com/pkg/errors"

	"powers-dict/bin/bframe"
	"powers-dict/model"
)

type Archetypes = model.Keyed[model.Archetype]

// DecodeBlock reads classes.bin or villain_classes.bin, which share a layout. Archetypes are
// keyed by class key; unnamed ones are dropped.
func DecodeBlock(d *bframe.Decoder) (*Archetypes, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*Archetypes, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "barchetypes.DecodeBlock error reading count")
		}
		archetypes := model.NewKeyed[model.Archetype]()
		for i := uint32(0); i < count; i++ {
			archetype, err := DecodeArchetype(d)
			if err != nil {
				return nil, errors.Wrapf(err, "barchetypes.DecodeBlock error decoding archetype %d of %d", i, count)
			}
			if !archetype.ClassKey.IsZero() {
				archetypes.Put(archetype.ClassKey, archetype)
			}
		}
		return archetypes, nil
	})
}

func DecodeArchetype(d *bframe.Decoder) (*model.Archetype, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.Archetype, error) {
		a := &model.Archetype{NamedTables: map[string]*model.NamedTable{}}
		f := d.Fields().
			String(&a.Name, &a.DisplayName, &a.DisplayHelp).
			Strings(&a.AllowedOriginNames, &a.SpecialRestrictions).
			String(&a.StoreRestrictions, &a.LockedTooltip, &a.ProductCode, &a.ReductionClass).
			Bool(&a.ReduceAsAV).
			Int32s(&a.LevelUpRespecs).
			String(&a.DisplayShortHelp, &a.Icon).
			NameKey(&a.PrimaryCategory, &a.SecondaryCategory, &a.PowerPoolCategory, &a.EpicPoolCategory)
		for _, dst := range []*[]*model.CharacterAttributes{
			&a.AttribMin,
			&a.AttribBase,
			&a.AttribStrengthMin,
			&a.AttribResistanceMin,
			&a.AttribDiminishingStr[model.DiminishingInner],
			&a.AttribDiminishingStr[model.DiminishingOuter],
			&a.AttribDiminishingCur[model.DiminishingInner],
			&a.AttribDiminishingCur[model.DiminishingOuter],
			&a.AttribDiminishingRes[model.DiminishingInner],
			&a.AttribDiminishingRes[model.DiminishingOuter],
		} {
			bframe.FieldArray(f, dst, decodeAttributes)
		}
		for _, dst := range []*[]*model.CharacterAttributesTable{
			&a.AttribTempMax,
			&a.AttribTempMaxMax,
			&a.AttribTempStrengthMax,
			&a.AttribTempResistanceMax,
		} {
			bframe.FieldArray(f, dst, decodeAttributesTable)
		}
		var tables []*model.NamedTable
		bframe.FieldArray(f, &tables, decodeNamedTable)
		f.Bool(&a.ConnectHPAndStatus)
		f.U32(&a.DefiantHitPointsAttrib)
		f.F32(&a.DefiantScale)
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "barchetypes.DecodeArchetype error decoding %q", a.Name)
		}

		if a.Name != "" {
			a.ClassKey = model.NewClassKey(a.Name)
		}
		for _, table := range tables {
			if table.Name != "" {
				a.NamedTables[strings.ToLower(table.Name)] = table
			}
		}
		return a, nil
	})
}

func decodeAttributes(d *bframe.Decoder) (*model.CharacterAttributes, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.CharacterAttributes, error) {
		attributes := &model.CharacterAttributes{}
		f := d.Fields().F32(attributes.Fields()...)
		return attributes, f.Err()
	})
}

func decodeAttributesTable(d *bframe.Decoder) (*model.CharacterAttributesTable, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.CharacterAttributesTable, error) {
		table := &model.CharacterAttributesTable{}
		for _, dst := range table.Fields() {
			values, err := d.Float32s()
			if err != nil {
				return nil, errors.Wrap(err, "barchetypes.decodeAttributesTable error")
			}
			*dst = append(*dst, values...)
		}
		return table, nil
	})
}

func decodeNamedTable(d *bframe.Decoder) (*model.NamedTable, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.NamedTable, error) {
		table := &model.NamedTable{}
		f := d.Fields().String(&table.Name).Float32s(&table.Values)
		return table, f.Err()
	})
}
