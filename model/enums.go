package model

// Enum is a closed set of values decoded from a 32-bit integer. Values the game added after
// this was written fall back to Default.
type Enum[T any] interface {
	~uint32
	IsValid() bool
	Default() T
}

type PowerSystem uint32

const (
	PowerSystemPowers PowerSystem = iota
	numPowerSystems
)

func (e PowerSystem) IsValid() bool        { return e < numPowerSystems }
func (e PowerSystem) Default() PowerSystem { return PowerSystemPowers }

type ShowPowerSetting uint32

const (
	ShowPowerNever ShowPowerSetting = iota
	ShowPowerDefault
	ShowPowerAlways
	ShowPowerIfUsable
	ShowPowerIfOwned
	numShowPowerSettings
)

func (e ShowPowerSetting) IsValid() bool             { return e < numShowPowerSettings }
func (e ShowPowerSetting) Default() ShowPowerSetting { return ShowPowerNever }

type PowerType uint32

const (
	PowerTypeClick PowerType = iota
	PowerTypeAuto
	PowerTypeToggle
	PowerTypeBoost
	PowerTypeInspiration
	PowerTypeGlobalBoost
	numPowerTypes
)

var powerTypeNames = [numPowerTypes]string{"Click", "Auto", "Toggle", "Boost", "Inspiration", "GlobalBoost"}

func (e PowerType) IsValid() bool      { return e < numPowerTypes }
func (e PowerType) Default() PowerType { return PowerTypeClick }

func (e PowerType) String() string {
	if !e.IsValid() {
		return e.Default().String()
	}
	return powerTypeNames[e]
}

type DeathCastableSetting uint32

const (
	DeathCastableAliveOnly DeathCastableSetting = iota
	DeathCastableDeadOnly
	DeathCastableDeadOrAlive
	numDeathCastableSettings
)

func (e DeathCastableSetting) IsValid() bool                 { return e < numDeathCastableSettings }
func (e DeathCastableSetting) Default() DeathCastableSetting { return DeathCastableAliveOnly }

type AIReport uint32

const (
	AIReportAlways AIReport = iota
	AIReportNever
	AIReportHitOnly
	AIReportMissOnly
	numAIReports
)

func (e AIReport) IsValid() bool     { return e < numAIReports }
func (e AIReport) Default() AIReport { return AIReportAlways }

type EffectArea uint32

const (
	EffectAreaCharacter EffectArea = iota
	EffectAreaCone
	EffectAreaSphere
	EffectAreaLocation
	EffectAreaChain
	EffectAreaVolume
	EffectAreaNamedVolume
	EffectAreaMap
	EffectAreaRoom
	EffectAreaTouch
	EffectAreaBox
	numEffectAreas
)

func (e EffectArea) IsValid() bool       { return e < numEffectAreas }
func (e EffectArea) Default() EffectArea { return EffectAreaCharacter }

type TargetVisibility uint32

const (
	TargetVisibilityLineOfSight TargetVisibility = iota
	TargetVisibilityNone
	numTargetVisibilities
)

func (e TargetVisibility) IsValid() bool             { return e < numTargetVisibilities }
func (e TargetVisibility) Default() TargetVisibility { return TargetVisibilityLineOfSight }

type TargetType uint32

const (
	TargetTypeNone TargetType = iota
	TargetTypeCaster
	TargetTypePlayer
	TargetTypePlayerHero
	TargetTypePlayerVillain
	TargetTypeDeadPlayer
	TargetTypeDeadPlayerFriend
	TargetTypeDeadPlayerFoe
	TargetTypeTeammate
	TargetTypeDeadTeammate
	TargetTypeDeadOrAliveTeammate
	TargetTypeVillain
	TargetTypeDeadVillain
	TargetTypeNPC
	TargetTypeDeadOrAliveFriend
	TargetTypeDeadFriend
	TargetTypeFriend
	TargetTypeDeadOrAliveFoe
	TargetTypeDeadFoe
	TargetTypeFoe
	TargetTypeLocation
	TargetTypeAny
	TargetTypeDeadAny
	TargetTypeDeadOrAliveAny
	TargetTypeTeleport
	TargetTypeDeadOrAliveMyPet
	TargetTypeDeadMyPet
	TargetTypeMyPet
	TargetTypeMyOwner
	TargetTypeMyCreator
	TargetTypeMyCreation
	TargetTypeDeadMyCreation
	TargetTypeDeadOrAliveMyCreation
	TargetTypeLeaguemate
	TargetTypeDeadLeaguemate
	TargetTypeDeadOrAliveLeaguemate
	TargetTypePosition
	numTargetTypes
)

func (e TargetType) IsValid() bool       { return e < numTargetTypes }
func (e TargetType) Default() TargetType { return TargetTypeNone }

type ModApplicationType uint32

const (
	ModApplicationOnTick ModApplicationType = iota
	ModApplicationOnActivate
	ModApplicationOnDeactivate
	ModApplicationOnExpire
	ModApplicationOnEnable
	ModApplicationOnDisable
	numModApplicationTypes
)

func (e ModApplicationType) IsValid() bool               { return e < numModApplicationTypes }
func (e ModApplicationType) Default() ModApplicationType { return ModApplicationOnTick }

type ModTarget uint32

const (
	ModTargetCaster ModTarget = iota
	ModTargetCastersOwnerAndAllPets
	ModTargetFocus
	ModTargetFocusOwnerAndAllPets
	ModTargetAffected
	ModTargetAffectedsOwnerAndAllPets
	ModTargetMarker
	numModTargets
)

func (e ModTarget) IsValid() bool      { return e < numModTargets }
func (e ModTarget) Default() ModTarget { return ModTargetAffected }

type ModType uint32

const (
	ModTypeDuration ModType = iota
	ModTypeMagnitude
	ModTypeConstant
	ModTypeExpression
	ModTypeSkillMagnitude
	numModTypes
)

func (e ModType) IsValid() bool    { return e < numModTypes }
func (e ModType) Default() ModType { return ModTypeMagnitude }

type CasterStackType uint32

const (
	CasterStackIndividual CasterStackType = iota
	CasterStackCollective
	numCasterStackTypes
)

func (e CasterStackType) IsValid() bool            { return e < numCasterStackTypes }
func (e CasterStackType) Default() CasterStackType { return CasterStackIndividual }

type StackType uint32

const (
	StackTypeStack StackType = iota
	StackTypeIgnore
	StackTypeExtend
	StackTypeReplace
	StackTypeOverlap
	StackTypeStackThenIgnore
	StackTypeRefresh
	StackTypeRefreshToCount
	StackTypeMaximize
	StackTypeSuppress
	numStackTypes
)

func (e StackType) IsValid() bool      { return e < numStackTypes }
func (e StackType) Default() StackType { return StackTypeReplace }

type PowerEvent uint32

const (
	PowerEventActivate PowerEvent = iota
	PowerEventActivateAttackClick
	PowerEventAttacked
	PowerEventAttackedNoException
	PowerEventHelped
	PowerEventHit
	PowerEventMiss
	PowerEventEndActivate
	PowerEventAttackedByOther
	PowerEventAttackedByOtherClick
	PowerEventHelpedByOther
	PowerEventHitByOther
	PowerEventHitByFriend
	PowerEventHitByFoe
	PowerEventMissByOther
	PowerEventMissByFriend
	PowerEventMissByFoe
	PowerEventDamaged
	PowerEventHealed
	PowerEventStunned
	PowerEventImmobilized
	PowerEventHeld
	PowerEventSleep
	PowerEventTerrorized
	PowerEventConfused
	PowerEventUntouchable
	PowerEventIntangible
	PowerEventOnlyAffectsSelf
	PowerEventAnyStatus
	PowerEventKnocked
	PowerEventDefeated
	PowerEventMissionObjectClick
	PowerEventMoved
	PowerEventDefiant
	numPowerEvents
)

func (e PowerEvent) IsValid() bool       { return e < numPowerEvents }
func (e PowerEvent) Default() PowerEvent { return PowerEventActivate }

type ToggleDroppable uint32

const (
	ToggleDroppableSometimes ToggleDroppable = iota
	ToggleDroppableAlways
	ToggleDroppableFirst
	ToggleDroppableLast
	ToggleDroppableNever
	numToggleDroppables
)

func (e ToggleDroppable) IsValid() bool            { return e < numToggleDroppables }
func (e ToggleDroppable) Default() ToggleDroppable { return ToggleDroppableSometimes }

type ProcAllowed uint32

const (
	ProcAllowedAll ProcAllowed = iota
	ProcAllowedNone
	ProcAllowedPowerOnly
	ProcAllowedGlobalOnly
	numProcAllowed
)

func (e ProcAllowed) IsValid() bool        { return e < numProcAllowed }
func (e ProcAllowed) Default() ProcAllowed { return ProcAllowedAll }

type VillainRank uint32

const (
	VillainRankNone VillainRank = iota
	VillainRankSmall
	VillainRankMinion
	VillainRankLieutenant
	VillainRankSniper
	VillainRankBoss
	VillainRankElite
	VillainRankArchVillain
	VillainRankArchVillain2
	VillainRankBigMonster
	VillainRankPet
	VillainRankDestructible
	numVillainRanks
)

func (e VillainRank) IsValid() bool        { return e < numVillainRanks }
func (e VillainRank) Default() VillainRank { return VillainRankNone }

type Gender uint32

const (
	GenderUndefined Gender = iota
	GenderNeuter
	GenderMale
	GenderFemale
	numGenders
)

func (e Gender) IsValid() bool   { return e < numGenders }
func (e Gender) Default() Gender { return GenderUndefined }

// PrimarySecondary records which archetype slot matched a category.
type PrimarySecondary int

const (
	PriSecNone PrimarySecondary = iota
	PriSecPrimary
	PriSecSecondary
)
