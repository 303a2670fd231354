package bpowers

import (
	"github.com/pkg/errors"

	"powers-dict/bin/berr"
	"powers-dict/bin/bframe"
	"powers-dict/bin/lbytes"
	"powers-dict/model"
)

const (
	maxAttribModFX = 4
)

type Powers = model.Keyed[model.BasePower]

// DecodeBlock reads the framed array of every power in powers.bin, keyed by full name.
func DecodeBlock(d *bframe.Decoder) (*Powers, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*Powers, error) {
		count, err := d.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "bpowers.DecodeBlock error reading count")
		}
		powers := model.NewKeyed[model.BasePower]()
		for i := uint32(0); i < count; i++ {
			power, err := DecodePower(d)
			if err != nil {
				return nil, errors.Wrapf(err, "bpowers.DecodeBlock error decoding power %d of %d", i, count)
			}
			powers.Put(power.FullName, power)
		}
		return powers, nil
	})
}

func DecodePower(d *bframe.Decoder) (*model.BasePower, error) {
	return bframe.Framed(d, decodePowerBody)
}

func decodePowerBody(d *bframe.Decoder) (*model.BasePower, error) {
	p := model.NewBasePower()

	fullName, err := d.RequiredNameKey()
	if err != nil {
		return nil, errors.Wrap(err, "bpowers.DecodePower error reading full name")
	}
	p.FullName = fullName

	// crc of the full name
	f := d.Fields().Skip(4)
	f.String(&p.SourceFile, &p.Name, &p.SourceName)
	bframe.FieldEnum(f, &p.System)
	f.Bool(&p.AutoIssue, &p.AutoIssueSaveLevel, &p.Free)
	f.String(
		&p.DisplayName,
		&p.DisplayHelp,
		&p.DisplayShortHelp,
		&p.DisplayTargetHelp,
		&p.DisplayTargetShortHelp,
		&p.DisplayAttackerAttack,
		&p.DisplayAttackerAttackFloater,
		&p.DisplayAttackerHit,
		&p.DisplayVictimHit,
		&p.DisplayConfirm,
		&p.DisplayFloatRewarded,
		&p.DisplayDefenseFloat,
		&p.IconName,
	)
	bframe.FieldEnum(f, &p.Type)
	f.I32(&p.NumAllowed)
	f.SpecialAttribs(&p.AttackTypes)
	f.Strings(
		&p.BuyRequires,
		&p.ActivateRequires,
		&p.SlotRequires,
		&p.TargetRequires,
		&p.RewardRequires,
		&p.AuctionRequires,
	)
	f.String(&p.RewardFallback)
	f.F32(&p.Accuracy)
	f.Bool(&p.NearGround, &p.TargetNearGround)
	bframe.FieldEnum(f, &p.DeathCastable)
	f.Bool(
		&p.CastThroughHold,
		&p.CastThroughSleep,
		&p.CastThroughStun,
		&p.CastThroughTerrorize,
		&p.ToggleIgnoreHold,
		&p.ToggleIgnoreSleep,
		&p.ToggleIgnoreStun,
		&p.IgnoreLevelBought,
		&p.ShootThroughUntouchable,
		&p.InterruptLikeSleep,
	)
	bframe.FieldEnum(f, &p.AIReport)
	bframe.FieldEnum(f, &p.EffectArea)
	f.I32(&p.MaxTargetsHit)
	f.Strings(&p.MaxTargetsExpr)
	f.F32(&p.Radius, &p.Arc, &p.ChainDelay)
	f.Strings(&p.ChainEff)
	f.Int32s(&p.ChainFork, &p.Unknown)
	f.Vec3(&p.BoxOffset, &p.BoxSize)
	f.F32(
		&p.Range,
		&p.RangeSecondary,
		&p.TimeToActivate,
		&p.RechargeTime,
		&p.ActivatePeriod,
		&p.EnduranceCost,
		&p.InsightCost,
	)
	f.I32(&p.TimeToConfirm)
	f.Bool(&p.SelfConfirm)
	f.Strings(&p.ConfirmRequires)
	f.Bool(&p.DestroyOnLimit, &p.StackingUsage)
	f.I32(&p.NumCharges, &p.MaxNumCharges)
	f.F32(
		&p.UsageTime,
		&p.MaxUsageTime,
		&p.Lifetime,
		&p.MaxLifetime,
		&p.LifetimeInGame,
		&p.MaxLifetimeInGame,
		&p.InterruptTime,
	)
	bframe.FieldEnum(f, &p.TargetVisibility)
	bframe.FieldEnum(f, &p.TargetType, &p.TargetTypeSecondary)
	bframe.FieldEnums(f, &p.AutoHit, &p.Affected)
	f.Bool(&p.TargetsThroughVisionPhase)
	f.SpecialAttribs(&p.BoostsAllowed, &p.GroupMembership, &p.ModesRequired, &p.ModesDisallowed)
	f.Strings(&p.AIGroups)
	bframe.FieldArray(f, &p.Redirects, decodeRedirect)
	bframe.FieldArray(f, &p.EffectGroups, decodeEffectGroup)
	f.Bool(&p.IgnoreStrength, &p.ShowBuffIcon)
	bframe.FieldEnum(f, &p.ShowInInventory)
	f.Bool(&p.ShowInManage, &p.ShowInInfo, &p.Deletable, &p.Tradeable)
	f.I32(&p.MaxBoosts)
	f.Bool(
		&p.DoNotSave,
		&p.BoostIgnoreEffectiveness,
		&p.BoostAlwaysCountForSet,
		&p.BoostTradeable,
		&p.BoostCombinable,
		&p.BoostAccountBound,
		&p.BoostBoostable,
		&p.BoostUsePlayerLevel,
	)
	f.String(&p.BoostCatalystConversion, &p.StoreProduct)
	f.I32(&p.BoostLicenseLevel, &p.MinSlotLevel, &p.MaxSlotLevel, &p.MaxBoostLevel)
	// three floats of unknown meaning
	f.Skip(12)
	f.SpecialAttribs(&p.Vars)
	bframe.FieldEnum(f, &p.ToggleDroppable)
	bframe.FieldEnum(f, &p.ProcAllowed)
	f.Strings(&p.HighlightEval)
	f.String(&p.HighlightIcon)
	f.RGBA(&p.HighlightRing)
	f.F32(&p.TravelSuppression, &p.PreferenceMultiplier)
	f.Bool(&p.DontSetStance)
	f.F32(&p.PointVal, &p.PointMultiplier)
	f.String(&p.ChainIntoPowerName)
	f.Bool(&p.InstanceLocked, &p.IsEnvironmentHit, &p.ShuffleTargetList)
	f.I32(&p.ForceLevelBought)
	f.Bool(&p.RefreshesOnActivePlayerChange, &p.Cancelable, &p.IgnoreToggleMaxDistance)
	f.I32(&p.ServerTrayPriority)
	f.Strings(&p.ServerTrayRequires)
	f.Bool(&p.AbusiveBuff)
	bframe.FieldEnum(f, &p.PositionCenter)
	f.F32(&p.PositionDistance, &p.PositionHeight, &p.PositionYaw)
	f.Bool(&p.FaceTarget)
	f.SpecialAttribs(&p.AttribCache)
	f.String(&p.FX.SourceFile)
	f.Do(func(d *bframe.Decoder) error {
		return decodePowerFX(d, &p.FX)
	})
	bframe.FieldArray(f, &p.CustomFX, decodeCustomFX)
	if err := f.Err(); err != nil {
		return nil, errors.Wrapf(err, "bpowers.DecodePower error decoding %s", p.FullName)
	}
	return p, nil
}

func decodeRedirect(d *bframe.Decoder) (*model.PowerRedirect, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.PowerRedirect, error) {
		redirect := &model.PowerRedirect{}
		f := d.Fields().
			NameKey(&redirect.FullName).
			Strings(&redirect.Requires).
			Bool(&redirect.ShowInInfo)
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "bpowers.decodeRedirect error")
		}
		return redirect, nil
	})
}

// decodeEffectGroup recurses into child groups, which share the same layout.
func decodeEffectGroup(d *bframe.Decoder) (*model.EffectGroup, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.EffectGroup, error) {
		group := &model.EffectGroup{}
		var flags uint32
		f := d.Fields().
			Strings(&group.Tags).
			F32(&group.Chance, &group.ProcsPerMinute, &group.Delay, &group.RadiusInner, &group.RadiusOuter).
			Strings(&group.Requires).
			U32(&flags, &group.EvalFlags)
		bframe.FieldArray(f, &group.Templates, decodeTemplate)
		bframe.FieldArray(f, &group.EffectGroups, decodeEffectGroup)
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "bpowers.decodeEffectGroup error")
		}
		group.Flags = model.EffectGroupFlag(flags) & model.EffectGroupFlagMask
		return group, nil
	})
}

func decodeTemplate(d *bframe.Decoder) (*model.AttribModTemplate, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribModTemplate, error) {
		t := &model.AttribModTemplate{}
		var (
			duration float32
			flags    [2]uint32
		)
		f := d.Fields().
			SpecialAttribs(&t.Attribs).
			U32(&t.Aspect)
		bframe.FieldEnum(f, &t.ApplicationType)
		bframe.FieldEnum(f, &t.Type)
		bframe.FieldEnum(f, &t.Target)
		optional(f, &t.TargetInfo, decodeTargetInfo)
		f.String(&t.Table)
		f.F32(&t.Scale, &duration, &t.Magnitude)
		f.Strings(&t.DurationExpr, &t.MagnitudeExpr)
		f.F32(&t.Delay, &t.Period, &t.TickChance)
		f.Strings(&t.DelayedRequires)
		bframe.FieldEnum(f, &t.CasterStackType)
		bframe.FieldEnum(f, &t.StackType)
		f.I32(&t.StackLimit, &t.StackKey)
		bframe.FieldEnums(f, &t.CancelEvents)
		bframe.FieldArray(f, &t.Suppress, decodeSuppressPair)
		f.SpecialAttrib(&t.BoostModAllowed)
		f.U32(&flags[0], &flags[1])
		optional(f, &t.Messages, decodeMessages)
		optional(f, &t.FX, decodeAttribModFX)
		bframe.FieldValue(f, &t.Param, decodeParam)
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "bpowers.decodeTemplate error")
		}
		t.Duration = model.NewModDuration(duration)
		t.Flags = model.NewAttribModFlag(flags[0], flags[1])
		return t, nil
	})
}

// optional reads a struct preceded by a presence count, which is only ever 0 or 1.
func optional[T any](f *bframe.Fields, dst **T, read func(d *bframe.Decoder) (*T, error)) {
	f.Do(func(d *bframe.Decoder) error {
		present, err := d.ReadU32()
		if err != nil || present == 0 {
			return err
		}
		t, err := read(d)
		if err != nil {
			return err
		}
		*dst = t
		return nil
	})
}

func decodeTargetInfo(d *bframe.Decoder) (*model.AttribModTargetInfo, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribModTargetInfo, error) {
		info := &model.AttribModTargetInfo{}
		f := d.Fields().Strings(&info.MarkerNames).Int32s(&info.MarkerCount)
		return info, f.Err()
	})
}

func decodeSuppressPair(d *bframe.Decoder) (*model.SuppressPair, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.SuppressPair, error) {
		instructions := []lbytes.Instruction{
			{Key: "event", ReadFunction: lbytes.CreateI32ReadFunction(d.Reader)},
			{Key: "seconds", ReadFunction: lbytes.CreateU32ReadFunction(d.Reader)},
			{Key: "always", ReadFunction: lbytes.CreateBoolReadFunction(d.Reader)},
		}
		return lbytes.ExecuteInstructions[model.SuppressPair](instructions)
	})
}

func decodeMessages(d *bframe.Decoder) (*model.AttribModMessages, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribModMessages, error) {
		messages := &model.AttribModMessages{}
		f := d.Fields().String(
			&messages.DisplayAttackerHit,
			&messages.DisplayVictimHit,
			&messages.DisplayFloat,
			&messages.DisplayDefenseFloat,
		)
		return messages, f.Err()
	})
}

func decodeAttribModFX(d *bframe.Decoder) (*model.AttribModFX, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.AttribModFX, error) {
		fx := &model.AttribModFX{}
		f := d.Fields().
			Int32s(&fx.ContinuingBits).
			String(&fx.ContinuingFX).
			Int32s(&fx.ConditionalBits).
			String(&fx.ConditionalFX)
		return fx, f.Err()
	})
}

// decodeParam reads the optional parameter block of a template. The leading id selects the
// layout, 0 means there is none.
func decodeParam(d *bframe.Decoder) (model.AttribModParam, error) {
	id, err := d.ReadU32()
	if err != nil || id == model.ParamTypeNone {
		return nil, err
	}
	return bframe.Framed(d, func(d *bframe.Decoder) (model.AttribModParam, error) {
		f := d.Fields()
		var param model.AttribModParam
		switch id {
		case model.ParamTypeCostume:
			costume := &model.ParamCostume{}
			f.String(&costume.CostumeName).I32(&costume.Priority)
			param = costume
		case model.ParamTypeReward:
			reward := &model.ParamReward{}
			f.Strings(&reward.Rewards)
			param = reward
		case model.ParamTypeEntCreate:
			entCreate := &model.ParamEntCreate{}
			f.NameKey(&entCreate.EntityDef).
				String(
					&entCreate.ClassName,
					&entCreate.CostumeName,
					&entCreate.DisplayName,
					&entCreate.PriorityList,
					&entCreate.AIConfig,
				).
				NameKeys(
					&entCreate.CategoryNames,
					&entCreate.PowerSetNames,
					&entCreate.PowerNames,
					&entCreate.Redirects,
				)
			param = entCreate
		case model.ParamTypePower:
			power := &model.ParamPower{}
			f.NameKeys(&power.CategoryNames, &power.PowerSetNames, &power.PowerNames).
				I32(&power.Count)
			param = power
		case model.ParamTypePhase:
			phase := &model.ParamPhase{}
			f.Int32s(&phase.CombatPhases, &phase.VisionPhases).I32(&phase.ExclusiveVisionPhase)
			param = phase
		case model.ParamTypeTeleport:
			teleport := &model.ParamTeleport{}
			f.String(&teleport.Destination)
			param = teleport
		case model.ParamTypeBehavior:
			behavior := &model.ParamBehavior{}
			f.Strings(&behavior.Behaviors)
			param = behavior
		case model.ParamTypeSZEValue:
			szeValue := &model.ParamSZEValue{}
			f.Strings(&szeValue.ScriptIDs, &szeValue.ScriptValues)
			param = szeValue
		case model.ParamTypeToken:
			token := &model.ParamToken{}
			f.Strings(&token.Tokens)
			param = token
		case model.ParamTypeEffectFilter:
			filter := &model.ParamEffectFilter{}
			f.Strings(&filter.Categories, &filter.PowerSets, &filter.Powers, &filter.Tags)
			param = filter
		case model.ParamTypeParam11:
			p11 := &model.Param11{}
			f.I32(&p11.Unknown1, &p11.Unknown2, &p11.Unknown3).
				F32(&p11.Unknown4).
				I32(&p11.Unknown5, &p11.Unknown6).
				F32(&p11.Unknown7, &p11.Unknown8, &p11.Unknown9, &p11.Unknown10)
			param = p11
		default:
			return nil, berr.NewUnknownParam(id)
		}
		if err := f.Err(); err != nil {
			return nil, errors.Wrapf(err, "bpowers.decodeParam error reading param %d", id)
		}
		return param, nil
	})
}

// decodePowerFX reads the fx block packed inline with its owner, so it has no frame. The source
// file is read by the caller since it sits before the block.
func decodePowerFX(d *bframe.Decoder, fx *model.PowerFX) error {
	f := d.Fields().
		Int32s(
			&fx.AttackBits,
			&fx.BlockBits,
			&fx.WindUpBits,
			&fx.HitBits,
			&fx.DeathBits,
			&fx.ActivationBits,
			&fx.DeactivationBits,
			&fx.InitialAttackBits,
			&fx.ContinuingBits,
			&fx.ConditionalBits,
		).
		String(
			&fx.ActivationFX,
			&fx.DeactivationFX,
			&fx.AttackFX,
			&fx.SecondaryAttackFX,
			&fx.HitFX,
			&fx.WindUpFX,
			&fx.BlockFX,
			&fx.DeathFX,
			&fx.InitialAttackFX,
		)
	// the first continuing and conditional fx are stored twice
	f.Skip(4).Do(fixedStrings(&fx.ContinuingFX))
	f.Skip(4).Do(fixedStrings(&fx.ConditionalFX))
	f.Int32s(&fx.ModeBits)
	f.I32(&fx.FramesBeforeHit, &fx.FramesBeforeSecondaryHit)
	f.Bool(&fx.DelayedHit)
	f.I32(&fx.FramesAttack, &fx.InitialFramesBeforeHit, &fx.InitialAttackFXFrameDelay)
	f.F32(&fx.ProjectileSpeed, &fx.SecondaryProjectileSpeed)
	f.I32(&fx.InitialFramesBeforeBlock)
	f.String(&fx.IgnoreAttackTimeErrors)
	f.I32(&fx.FramesBeforeBlock)
	f.Bool(&fx.FXImportant)
	f.RGBA(&fx.TintPrimary, &fx.TintSecondary)
	f.Bool(&fx.HideOriginal)
	if err := f.Err(); err != nil {
		return errors.Wrap(err, "bpowers.decodePowerFX error")
	}

	if fx.FramesBeforeHit == 0 {
		fx.FramesBeforeHit = model.DefaultFramesBeforeHit
	}
	if fx.FramesAttack == 0 {
		fx.FramesAttack = model.DefaultFramesAttack
	}
	if fx.InitialFramesBeforeHit == 0 {
		fx.InitialFramesBeforeHit = model.DefaultFramesBeforeHit
	}
	return nil
}

// fixedStrings reads maxAttribModFX pool strings, keeping the present ones.
func fixedStrings(dst *[]string) func(d *bframe.Decoder) error {
	return func(d *bframe.Decoder) error {
		for i := 0; i < maxAttribModFX; i++ {
			s, err := d.PoolString()
			if err != nil {
				return err
			}
			if s != "" {
				*dst = append(*dst, s)
			}
		}
		return nil
	}
}

func decodeCustomFX(d *bframe.Decoder) (*model.CustomPowerFX, error) {
	return bframe.Framed(d, func(d *bframe.Decoder) (*model.CustomPowerFX, error) {
		custom := &model.CustomPowerFX{}
		f := d.Fields().
			String(&custom.Token).
			Strings(&custom.AltThemes).
			String(&custom.SourceFile, &custom.Category, &custom.DisplayName)
		f.Do(func(d *bframe.Decoder) error {
			return decodePowerFX(d, &custom.FX)
		})
		f.String(&custom.PaletteName)
		if err := f.Err(); err != nil {
			return nil, errors.Wrap(err, "bpowers.decodeCustomFX error")
		}
		custom.FX.SourceFile = custom.SourceFile
		return custom, nil
	})
}
