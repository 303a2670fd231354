package bpowercats

import (
	"github.com/pkg/errors"

	"powers-dict/bin/bframe"
	"powers-dict/model"
)

type PowerCategories = model.Keyed[model.PowerCategory]

// DecodeBlock reads powercats.bin, keyed by category name.
func DecodeBlock(d *bframe.Decoder) (*PowerCategories, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*PowerCategories, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "bpowercats.DecodeBlock error reading count")
		}
		categories := model.NewKeyed[model.PowerCategory]()
		for i := uint32(0); i < count; i++ {
			category, err := DecodePowerCategory(d)
			if err != nil {
				return nil, errors.Wrapf(err, "bpowercats.DecodeBlock error decoding category %d of %d", i, count)
			}
			categories.Put(category.Name, category)
		}
		return categories, nil
	})
}

func DecodePowerCategory(d *bframe.Decoder) (*model.PowerCategory, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.PowerCategory, error) {
		c := &model.PowerCategory{}
		f := d.Fields().String(&c.SourceFile)
		bframe.FieldValue(f, &c.Name, (*bframe.Decoder).RequiredNameKey)
		f.String(&c.DisplayName, &c.DisplayHelp, &c.DisplayShortHelp)
		bframe.FieldArray(f, &c.PowerSetNames, (*bframe.Decoder).RequiredNameKey)
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "bpowercats.DecodePowerCategory error decoding %s", c.Name)
		}
		return c, nil
	})
}
