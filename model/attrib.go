package model

import (
	"fmt"
	"math/bits"
)

// SpecialAttrib is either an offset into CharacterAttributes or one of the engine's special
// attributes.
type SpecialAttrib int32

const (
	SpecialAttribFirst         SpecialAttrib = 460
	SpecialAttribLast          SpecialAttrib = 504
	SpecialAttribPowerRedirect SpecialAttrib = 1460
)

var specialAttribNames = []string{
	"Translucency", "EntCreate", "ClearDamagers", "SilentKill", "XPDebtProtection",
	"SetMode", "SetCostume", "Glide", "Null", "Avoid", "Reward", "XPDebt", "DropToggles",
	"GrantPower", "RevokePower", "UnsetMode", "GlobalChanceMod", "PowerChanceMod",
	"GrantBoostedPower", "ViewAttrib", "RewardSource", "RewardSourceTeam", "ClearFog",
	"CombatPhase", "CombatModShift", "RechargePower", "VisionPhase", "NinjaRun", "Walk",
	"BeastRun", "SteamJump", "DesignerStatus", "ExclusiveVisionPhase", "HoverBoard",
	"SetSZEValue", "AddBehavior", "MagicCarpet", "TokenAdd", "TokenSet", "TokenClear",
	"LuaExec", "ForceMove", "ParkourRun", "CancelMods", "ExecutePower",
}

// IsCharacter reports whether the value is a plain attribute offset.
func (a SpecialAttrib) IsCharacter() bool {
	return a != SpecialAttribPowerRedirect && (a < SpecialAttribFirst || a > SpecialAttribLast)
}

func (a SpecialAttrib) String() string {
	switch {
	case a == SpecialAttribPowerRedirect:
		return "PowerRedirect"
	case a.IsCharacter():
		return fmt.Sprintf("Character(%d)", int32(a))
	}
	return specialAttribNames[a-SpecialAttribFirst]
}

type ModDurationKind int

const (
	ModDurationSeconds ModDurationKind = iota
	ModDurationInstant
	ModDurationUntilKilled
)

const untilKilledThreshold = 99999

type ModDuration struct {
	Kind    ModDurationKind `json:"kind"`
	Seconds float32         `json:"seconds,omitempty"`
}

func NewModDuration(value float32) ModDuration {
	switch {
	case value == -1:
		return ModDuration{Kind: ModDurationInstant}
	case value >= untilKilledThreshold:
		return ModDuration{Kind: ModDurationUntilKilled}
	}
	return ModDuration{Kind: ModDurationSeconds, Seconds: value}
}

type EffectGroupFlag uint32

const (
	EffectGroupPVEOnly EffectGroupFlag = 1 << iota
	EffectGroupPVPOnly
	EffectGroupFallback
	EffectGroupLinkedChance

	EffectGroupFlagMask EffectGroupFlag = 0xF
)

func (f EffectGroupFlag) Has(flag EffectGroupFlag) bool { return f&flag != 0 }

type AttribModFlag uint64

const (
	AttribModNoFloaters AttribModFlag = 1 << iota
	AttribModBoostIgnoreDiminishing
	AttribModCancelOnMiss
	AttribModNearGround
	AttribModIgnoreStrength
	AttribModIgnoreResistance
	AttribModIgnoreCombatMods
	AttribModResistMagnitude
	AttribModResistDuration
	AttribModCombatModMagnitude
	AttribModCombatModDuration
	AttribModBoost
	AttribModHideZero
	AttribModKeepThroughDeath
	AttribModDelayEval
	AttribModNoHitDelay
	AttribModNoProjectileDelay
	AttribModStackByAttribAndKey
	AttribModStackExactPower
	AttribModIgnoreSuppressErrors
)

const (
	AttribModVanishEntOnTimeout AttribModFlag = 1 << (iota + 32)
	AttribModDoNotDisplayShift
	AttribModNoTokenTime
	AttribModRevokeAll
	AttribModDoNotTintCostume
	AttribModCopyBoosts
	AttribModCopyCreatorMods
	AttribModNoCreatorModFX
	AttribModPseudoPet
	AttribModPetVisible
	AttribModPetCommandable
)

// AttribModFlagMask keeps bits 0..19 of the low word and 0..10 of the high word.
const AttribModFlagMask AttribModFlag = 0x7FF<<32 | 0xFFFFF

func NewAttribModFlag(lo uint32, hi uint32) AttribModFlag {
	return (AttribModFlag(hi)<<32 | AttribModFlag(lo)) & AttribModFlagMask
}

func (f AttribModFlag) Has(flag AttribModFlag) bool { return f&flag != 0 }

func (f AttribModFlag) Count() int { return bits.OnesCount64(uint64(f)) }

type VillainExclusion uint32

const (
	VillainExclusionNone VillainExclusion = 0
	VillainExclusionCoH  VillainExclusion = 1
	VillainExclusionCoV  VillainExclusion = 2
	VillainExclusionMA   VillainExclusion = 4

	VillainExclusionMask VillainExclusion = 0x7
)

type VillainDefFlag uint32

const (
	VillainDefNoGroupBadgeStat VillainDefFlag = 1
	VillainDefNoRankBadgeStat  VillainDefFlag = 4
	VillainDefNoNameBadgeStat  VillainDefFlag = 8

	VillainDefFlagMask VillainDefFlag = 0xD
)

func (f VillainDefFlag) Has(flag VillainDefFlag) bool { return f&flag != 0 }
