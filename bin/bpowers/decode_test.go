package bpowers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"powers-dict/bin/berr"
	"powers-dict/bin/bframe"
	"powers-dict/bin/bmsg"
	"powers-dict/bin/bpool"
	"powers-dict/bin/lbytes"
	"powers-dict/model"
)

const (
	shriek = iota
	shriekDisplayName
	henchman
	scream
)

type DecodeTestSuite struct {
	suite.Suite
	R        *require.Assertions
	strings  *bpool.StringPool
	messages *bmsg.MessageStore
	offsets  []uint32
}

func (suite *DecodeTestSuite) SetupSuite() {
	suite.R = suite.Require()

	encoder := lbytes.NewEncoder()
	suite.offsets = bpool.Encode(
		encoder,
		"Blaster_Ranged.Sonic_Attack.Shriek",
		"P3385125342",
		"Pets_Henchman",
		"Blaster_Ranged.Sonic_Attack.Scream",
	)
	pool, err := bpool.Decode(lbytes.NewBytesReader(encoder.Bytes()))
	suite.R.NoError(err)
	suite.strings = pool

	suite.messages = bmsg.NewMessageStore()
	suite.messages.Messages = []string{"Shriek"}
	suite.messages.MessageIDs["P3385125342"] = &bmsg.TextMessage{MessageIndex: 0}
}

func (suite *DecodeTestSuite) decoder(encoder *lbytes.Encoder) *bframe.Decoder {
	return bframe.New(lbytes.NewBytesReader(encoder.Bytes()), suite.strings, suite.messages)
}

func encodePowerFX(body *lbytes.Encoder) {
	body.Zeroes(10) // bit arrays
	body.Zeroes(9)  // fx names
	body.Zeroes(5)  // continuing fx
	body.Zeroes(5)  // conditional fx
	body.Zeroes(1)  // mode bits
	body.I32(0, 0)
	body.Bool(false)
	body.I32(0, 0, 0)
	body.F32(0, 0)
	body.I32(0)
	body.U32(0)
	body.I32(0)
	body.Bool(false)
	body.U32(255, 0, 0, 255, 0, 0, 255, 255)
	body.Bool(false)
}

func encodeTemplate(body *lbytes.Encoder, param func(body *lbytes.Encoder)) {
	body.U32(1).I32(12) // attribs
	body.U32(0)         // aspect
	body.U32(0, 0, 999) // application type, type, target
	body.U32(0)         // no target info
	body.U32(0)         // table
	body.F32(1, -1, 2.5)
	body.Zeroes(2)
	body.F32(0, 0, 1)
	body.Zeroes(1)
	body.U32(0, 3)
	body.I32(2, 0)
	body.U32(0) // cancel events
	body.U32(1).Frame(func(pair *lbytes.Encoder) {
		pair.I32(5).U32(10).Bool(true)
	})
	body.I32(0)
	body.U32(1, 1) // flags
	body.U32(0, 0) // no messages, no fx
	param(body)
}

func encodeEffectGroup(body *lbytes.Encoder, flags uint32, templates int, children int, param func(body *lbytes.Encoder)) {
	body.U32(0)
	body.F32(1, 0, 0, 0, 0)
	body.U32(0)
	body.U32(flags, 0)
	body.U32(uint32(templates))
	for i := 0; i < templates; i++ {
		body.Frame(func(template *lbytes.Encoder) {
			encodeTemplate(template, param)
		})
	}
	body.U32(uint32(children))
	for i := 0; i < children; i++ {
		body.Frame(func(child *lbytes.Encoder) {
			encodeEffectGroup(child, 1, 0, 0, nil)
		})
	}
}

func (suite *DecodeTestSuite) encodePower(body *lbytes.Encoder, fullName uint32, param func(body *lbytes.Encoder)) {
	body.U32(fullName, 0xDEADBEEF)
	body.Zeroes(3)
	body.U32(0)
	body.Bool(true, false, false)
	body.U32(suite.offsets[shriekDisplayName]).Zeroes(12)
	body.U32(2)
	body.I32(1)
	body.Zeroes(1 + 6 + 1)
	body.F32(1.2)
	body.Zeroes(17)
	body.F32(0, 0, 0)
	body.Zeroes(3)
	body.F32(0, 0, 0, 0, 0, 0)
	body.F32(80, 0, 1.5, 4, 0, 5.2, 0)
	body.Zeroes(7)
	body.F32(0, 0, 0, 0, 0, 0, 0)
	body.Zeroes(11)
	body.U32(1).Frame(func(redirect *lbytes.Encoder) {
		redirect.U32(suite.offsets[scream], 0).Bool(true)
	})
	body.U32(1).Frame(func(group *lbytes.Encoder) {
		encodeEffectGroup(group, 0xFF, 1, 1, param)
	})
	body.Zeroes(22)
	body.F32(1, 999999, 1)
	body.Zeroes(5)
	body.U32(0, 0, 0, 0)
	body.F32(0, 0).Bool(false).F32(0, 0)
	body.Zeroes(1)
	body.Zeroes(8)
	body.Zeroes(3)
	body.F32(0, 0, 0).Bool(false)
	body.Zeroes(1)
	body.U32(0)
	encodePowerFX(body)
	body.U32(0)
}

func (suite *DecodeTestSuite) entCreateParam(body *lbytes.Encoder) {
	body.U32(model.ParamTypeEntCreate).Frame(func(param *lbytes.Encoder) {
		param.U32(suite.offsets[henchman])
		param.Zeroes(5)
		param.U32(0, 0)
		param.U32(2, suite.offsets[shriek], 0)
		param.U32(0)
	})
}

func (suite *DecodeTestSuite) TestDecodeBlock() {
	encoder := lbytes.NewEncoder().Frame(func(block *lbytes.Encoder) {
		block.U32(1).Frame(func(power *lbytes.Encoder) {
			suite.encodePower(power, suite.offsets[shriek], suite.entCreateParam)
		})
	})

	powers, err := DecodeBlock(suite.decoder(encoder))
	suite.R.NoError(err)
	suite.R.Equal(1, powers.Len())

	power, ok := powers.Get(model.NewNameKey("blaster_ranged.sonic_attack.SHRIEK"))
	suite.R.True(ok)
	suite.Equal("Shriek", power.DisplayName)
	suite.Equal(model.PowerTypeToggle, power.Type)
	suite.True(power.AutoIssue)
	suite.Equal(float32(1.2), power.Accuracy)
	suite.Equal(float32(80), power.Range)
	suite.Equal(float32(5.2), power.EnduranceCost)

	suite.R.Len(power.Redirects, 1)
	suite.Equal("Blaster_Ranged.Sonic_Attack.Scream", power.Redirects[0].FullName.String())
	suite.True(power.Redirects[0].ShowInInfo)

	suite.R.Len(power.EffectGroups, 1)
	group := power.EffectGroups[0]
	suite.Equal(model.EffectGroupFlagMask, group.Flags)
	suite.R.Len(group.EffectGroups, 1)
	suite.Equal(model.EffectGroupPVEOnly, group.EffectGroups[0].Flags)

	templates := power.Templates()
	suite.R.Len(templates, 1)
	template := templates[0]
	suite.Equal([]model.SpecialAttrib{12}, template.Attribs)
	suite.Equal(model.ModTargetAffected, template.Target)
	suite.Equal(model.ModDuration{Kind: model.ModDurationInstant}, template.Duration)
	suite.Equal(float32(2.5), template.Magnitude)
	suite.Equal(model.StackTypeReplace, template.StackType)
	suite.Equal([]*model.SuppressPair{{Event: 5, Seconds: 10, Always: true}}, template.Suppress)
	suite.True(template.Flags.Has(model.AttribModNoFloaters))
	suite.True(template.Flags.Has(model.AttribModVanishEntOnTimeout))
	suite.Nil(template.Messages)

	entCreate, ok := template.Param.(*model.ParamEntCreate)
	suite.R.True(ok)
	suite.Equal("Pets_Henchman", entCreate.EntityDef.String())
	suite.Equal([]model.NameKey{model.NewNameKey("Blaster_Ranged.Sonic_Attack.Shriek")}, entCreate.PowerNames)

	suite.Equal(int32(model.DefaultFramesBeforeHit), power.FX.FramesBeforeHit)
	suite.Equal(int32(model.DefaultFramesAttack), power.FX.FramesAttack)
	suite.Equal(int32(model.DefaultFramesBeforeHit), power.FX.InitialFramesBeforeHit)
	suite.Equal(model.RGBA{255, 0, 0, 255}, power.FX.TintPrimary)
	suite.Equal(model.RGBA{0, 0, 255, 255}, power.FX.TintSecondary)
	suite.Equal(model.RGBA{}, power.HighlightRing)
}

func (suite *DecodeTestSuite) TestDecodePower_UnknownParam() {
	encoder := lbytes.NewEncoder().Frame(func(power *lbytes.Encoder) {
		suite.encodePower(power, suite.offsets[shriek], func(body *lbytes.Encoder) {
			body.U32(12).Frame(func(*lbytes.Encoder) {})
		})
	})

	_, err := DecodePower(suite.decoder(encoder))
	suite.R.Error(err)
	kind, ok := berr.KindOf(err)
	suite.R.True(ok)
	suite.Equal(berr.UnknownParam, kind)
}

func (suite *DecodeTestSuite) TestDecodePower_MissingName() {
	encoder := lbytes.NewEncoder().Frame(func(power *lbytes.Encoder) {
		suite.encodePower(power, 0, suite.entCreateParam)
	})

	_, err := DecodePower(suite.decoder(encoder))
	kind, ok := berr.KindOf(err)
	suite.R.True(ok)
	suite.Equal(berr.MissingNameKey, kind)
}

func (suite *DecodeTestSuite) TestDecodePower_SizeMismatch() {
	encoder := lbytes.NewEncoder().Frame(func(power *lbytes.Encoder) {
		suite.encodePower(power, suite.offsets[shriek], suite.entCreateParam)
		power.U32(0)
	})

	_, err := DecodePower(suite.decoder(encoder))
	kind, ok := berr.KindOf(err)
	suite.R.True(ok)
	suite.Equal(berr.SizeMismatch, kind)
}

func TestDecodeTestSuite(t *testing.T) {
	suite.Run(t, new(DecodeTestSuite))
}

func TestDecodeParam_None(t *testing.T) {
	d := bframe.New(lbytes.NewBytesReader(lbytes.NewEncoder().U32(0).Bytes()), bpool.New(nil), nil)

	param, err := decodeParam(d)
	require.NoError(t, err)
	assert.Nil(t, param)
	assert.Equal(t, uint32(4), d.Pos())
}
