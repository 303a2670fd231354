package model

import (
	"strings"
)

const (
	DamageTypeSize   = 20
	DefenseTypeSize  = 20
	ElusivitySize    = 20
	ClassKeyPrefix   = "@class_"
	DiminishingInner = 0
	DiminishingOuter = 1

	// CharacterAttributesSize is the wire size of CharacterAttributes, 4 bytes per value.
	CharacterAttributesSize = 460
)

type (
	// CharacterAttributes fields are declared in wire order, which is also the order of their byte
	// offsets (4 bytes each) referenced by SpecialAttrib.
	CharacterAttributes struct {
		DamageType          [DamageTypeSize]float32  `json:"damage_type"`
		HitPoints           float32                  `json:"hit_points"`
		Absorb              float32                  `json:"absorb"`
		Endurance           float32                  `json:"endurance"`
		Insight             float32                  `json:"insight"`
		Rage                float32                  `json:"rage"`
		ToHit               float32                  `json:"to_hit"`
		DefenseType         [DefenseTypeSize]float32 `json:"defense_type"`
		Defense             float32                  `json:"defense"`
		SpeedRunning        float32                  `json:"speed_running"`
		SpeedFlying         float32                  `json:"speed_flying"`
		SpeedSwimming       float32                  `json:"speed_swimming"`
		SpeedJumping        float32                  `json:"speed_jumping"`
		JumpHeight          float32                  `json:"jump_height"`
		MovementControl     float32                  `json:"movement_control"`
		MovementFriction    float32                  `json:"movement_friction"`
		Stealth             float32                  `json:"stealth"`
		StealthRadius       float32                  `json:"stealth_radius"`
		StealthRadiusPlayer float32                  `json:"stealth_radius_player"`
		PerceptionRadius    float32                  `json:"perception_radius"`
		Regeneration        float32                  `json:"regeneration"`
		Recovery            float32                  `json:"recovery"`
		InsightRecovery     float32                  `json:"insight_recovery"`
		ThreatLevel         float32                  `json:"threat_level"`
		Taunt               float32                  `json:"taunt"`
		Placate             float32                  `json:"placate"`
		Confused            float32                  `json:"confused"`
		Afraid              float32                  `json:"afraid"`
		Terrorized          float32                  `json:"terrorized"`
		Held                float32                  `json:"held"`
		Immobilized         float32                  `json:"immobilized"`
		Stunned             float32                  `json:"stunned"`
		Sleep               float32                  `json:"sleep"`
		Fly                 float32                  `json:"fly"`
		JumpPack            float32                  `json:"jump_pack"`
		Teleport            float32                  `json:"teleport"`
		Untouchable         float32                  `json:"untouchable"`
		Intangible          float32                  `json:"intangible"`
		OnlyAffectsSelf     float32                  `json:"only_affects_self"`
		ExperienceGain      float32                  `json:"experience_gain"`
		InfluenceGain       float32                  `json:"influence_gain"`
		PrestigeGain        float32                  `json:"prestige_gain"`
		NullBool            float32                  `json:"null_bool"`
		KnockUp             float32                  `json:"knock_up"`
		KnockBack           float32                  `json:"knock_back"`
		Repel               float32                  `json:"repel"`
		Accuracy            float32                  `json:"accuracy"`
		Radius              float32                  `json:"radius"`
		Arc                 float32                  `json:"arc"`
		Range               float32                  `json:"range"`
		TimeToActivate      float32                  `json:"time_to_activate"`
		RechargeTime        float32                  `json:"recharge_time"`
		InterruptTime       float32                  `json:"interrupt_time"`
		EnduranceDiscount   float32                  `json:"endurance_discount"`
		InsightDiscount     float32                  `json:"insight_discount"`
		Meter               float32                  `json:"meter"`
		Elusivity           [ElusivitySize]float32   `json:"elusivity"`
		ElusivityBase       float32                  `json:"elusivity_base"`
	}

	// CharacterAttributesTable holds one value per level for each attribute.
	CharacterAttributesTable struct {
		DamageType          [DamageTypeSize][]float32  `json:"damage_type"`
		HitPoints           []float32                  `json:"hit_points"`
		Endurance           []float32                  `json:"endurance"`
		Insight             []float32                  `json:"insight"`
		Rage                []float32                  `json:"rage"`
		ToHit               []float32                  `json:"to_hit"`
		DefenseType         [DefenseTypeSize][]float32 `json:"defense_type"`
		Defense             []float32                  `json:"defense"`
		SpeedRunning        []float32                  `json:"speed_running"`
		SpeedFlying         []float32                  `json:"speed_flying"`
		SpeedSwimming       []float32                  `json:"speed_swimming"`
		SpeedJumping        []float32                  `json:"speed_jumping"`
		JumpHeight          []float32                  `json:"jump_height"`
		MovementControl     []float32                  `json:"movement_control"`
		MovementFriction    []float32                  `json:"movement_friction"`
		Stealth             []float32                  `json:"stealth"`
		StealthRadius       []float32                  `json:"stealth_radius"`
		StealthRadiusPlayer []float32                  `json:"stealth_radius_player"`
		PerceptionRadius    []float32                  `json:"perception_radius"`
		Regeneration        []float32                  `json:"regeneration"`
		Recovery            []float32                  `json:"recovery"`
		InsightRecovery     []float32                  `json:"insight_recovery"`
		ThreatLevel         []float32                  `json:"threat_level"`
		Taunt               []float32                  `json:"taunt"`
		Placate             []float32                  `json:"placate"`
		Confused            []float32                  `json:"confused"`
		Afraid              []float32                  `json:"afraid"`
		Terrorized          []float32                  `json:"terrorized"`
		Held                []float32                  `json:"held"`
		Immobilized         []float32                  `json:"immobilized"`
		Stunned             []float32                  `json:"stunned"`
		Sleep               []float32                  `json:"sleep"`
		Fly                 []float32                  `json:"fly"`
		JumpPack            []float32                  `json:"jump_pack"`
		Teleport            []float32                  `json:"teleport"`
		Untouchable         []float32                  `json:"untouchable"`
		Intangible          []float32                  `json:"intangible"`
		OnlyAffectsSelf     []float32                  `json:"only_affects_self"`
		ExperienceGain      []float32                  `json:"experience_gain"`
		InfluenceGain       []float32                  `json:"influence_gain"`
		PrestigeGain        []float32                  `json:"prestige_gain"`
		NullBool            []float32                  `json:"null_bool"`
		KnockUp             []float32                  `json:"knock_up"`
		KnockBack           []float32                  `json:"knock_back"`
		Repel               []float32                  `json:"repel"`
		Accuracy            []float32                  `json:"accuracy"`
		Radius              []float32                  `json:"radius"`
		Arc                 []float32                  `json:"arc"`
		Range               []float32                  `json:"range"`
		TimeToActivate      []float32                  `json:"time_to_activate"`
		RechargeTime        []float32                  `json:"recharge_time"`
		InterruptTime       []float32                  `json:"interrupt_time"`
		EnduranceDiscount   []float32                  `json:"endurance_discount"`
		InsightDiscount     []float32                  `json:"insight_discount"`
		Meter               []float32                  `json:"meter"`
		Elusivity           [ElusivitySize][]float32   `json:"elusivity"`
		Absorb              []float32                  `json:"absorb"`
	}

	NamedTable struct {
		Name   string    `json:"name"`
		Values []float32 `json:"values"`
	}

	Archetype struct {
		Name                string   `json:"name,omitempty"`
		DisplayName         string   `json:"display_name,omitempty"`
		DisplayHelp         string   `json:"display_help,omitempty"`
		AllowedOriginNames  []string `json:"allowed_origin_names,omitempty"`
		SpecialRestrictions []string `json:"special_restrictions,omitempty"`
		StoreRestrictions   string   `json:"store_restrictions,omitempty"`
		LockedTooltip       string   `json:"locked_tooltip,omitempty"`
		ProductCode         string   `json:"product_code,omitempty"`
		ReductionClass      string   `json:"reduction_class,omitempty"`
		ReduceAsAV          bool     `json:"reduce_as_av"`
		LevelUpRespecs      []int32  `json:"level_up_respecs,omitempty"`
		DisplayShortHelp    string   `json:"display_short_help,omitempty"`
		Icon                string   `json:"icon,omitempty"`
		PrimaryCategory     NameKey  `json:"primary_category"`
		SecondaryCategory   NameKey  `json:"secondary_category"`
		PowerPoolCategory   NameKey  `json:"power_pool_category"`
		EpicPoolCategory    NameKey  `json:"epic_pool_category"`

		AttribMin           []*CharacterAttributes `json:"-"`
		AttribBase          []*CharacterAttributes `json:"-"`
		AttribStrengthMin   []*CharacterAttributes `json:"-"`
		AttribResistanceMin []*CharacterAttributes `json:"-"`
		// indexed by DiminishingInner and DiminishingOuter
		AttribDiminishingStr [2][]*CharacterAttributes `json:"-"`
		AttribDiminishingCur [2][]*CharacterAttributes `json:"-"`
		AttribDiminishingRes [2][]*CharacterAttributes `json:"-"`

		AttribTempMax           []*CharacterAttributesTable `json:"-"`
		AttribTempMaxMax        []*CharacterAttributesTable `json:"-"`
		AttribTempStrengthMax   []*CharacterAttributesTable `json:"-"`
		AttribTempResistanceMax []*CharacterAttributesTable `json:"-"`

		// keyed by lowercase table name
		NamedTables map[string]*NamedTable `json:"-"`

		ConnectHPAndStatus     bool    `json:"connect_hp_and_status"`
		DefiantHitPointsAttrib uint32  `json:"defiant_hit_points_attrib"`
		DefiantScale           float32 `json:"defiant_scale"`
		ClassKey               NameKey `json:"class_key"`
	}
)

// NewClassKey turns an archetype name like "Blaster" into "@class_blaster".
func NewClassKey(name string) NameKey {
	lowerName := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	if strings.HasPrefix(lowerName, ClassKeyPrefix[1:]) {
		return NewNameKey(ClassKeyPrefix[:1] + lowerName)
	}
	return NewNameKey(ClassKeyPrefix + lowerName)
}

// NamedTable looks a scaling table up by name, ignoring case.
func (a *Archetype) NamedTable(name string) (*NamedTable, bool) {
	table, ok := a.NamedTables[strings.ToLower(name)]
	return table, ok
}

// Fields lists a pointer to every value in wire order.
func (a *CharacterAttributes) Fields() []*float32 {
	fields := make([]*float32, 0, CharacterAttributesSize/4)
	for i := range a.DamageType {
		fields = append(fields, &a.DamageType[i])
	}
	fields = append(fields, &a.HitPoints, &a.Absorb, &a.Endurance, &a.Insight, &a.Rage, &a.ToHit)
	for i := range a.DefenseType {
		fields = append(fields, &a.DefenseType[i])
	}
	fields = append(
		fields,
		&a.Defense, &a.SpeedRunning, &a.SpeedFlying, &a.SpeedSwimming, &a.SpeedJumping,
		&a.JumpHeight, &a.MovementControl, &a.MovementFriction, &a.Stealth, &a.StealthRadius,
		&a.StealthRadiusPlayer, &a.PerceptionRadius, &a.Regeneration, &a.Recovery,
		&a.InsightRecovery, &a.ThreatLevel, &a.Taunt, &a.Placate,
		&a.Confused, &a.Afraid, &a.Terrorized, &a.Held, &a.Immobilized, &a.Stunned, &a.Sleep,
		&a.Fly, &a.JumpPack, &a.Teleport, &a.Untouchable, &a.Intangible, &a.OnlyAffectsSelf,
		&a.ExperienceGain, &a.InfluenceGain, &a.PrestigeGain, &a.NullBool,
		&a.KnockUp, &a.KnockBack, &a.Repel, &a.Accuracy, &a.Radius, &a.Arc, &a.Range,
		&a.TimeToActivate, &a.RechargeTime, &a.InterruptTime, &a.EnduranceDiscount,
		&a.InsightDiscount, &a.Meter,
	)
	for i := range a.Elusivity {
		fields = append(fields, &a.Elusivity[i])
	}
	return append(fields, &a.ElusivityBase)
}

// Fields lists a pointer to every table in wire order. Defense shows up twice, values read the
// second time are appended to the first.
func (t *CharacterAttributesTable) Fields() []*[]float32 {
	fields := make([]*[]float32, 0, 115)
	for i := range t.DamageType {
		fields = append(fields, &t.DamageType[i])
	}
	fields = append(fields, &t.HitPoints, &t.Endurance, &t.Insight, &t.Rage, &t.ToHit)
	for i := range t.DefenseType {
		fields = append(fields, &t.DefenseType[i])
	}
	fields = append(
		fields,
		&t.Defense, &t.SpeedRunning, &t.SpeedFlying, &t.SpeedSwimming, &t.SpeedJumping,
		&t.JumpHeight, &t.MovementControl, &t.MovementFriction, &t.Stealth, &t.StealthRadius,
		&t.StealthRadiusPlayer, &t.PerceptionRadius, &t.Regeneration, &t.Recovery,
		&t.InsightRecovery, &t.ThreatLevel, &t.Taunt, &t.Placate,
		&t.Confused, &t.Afraid, &t.Terrorized, &t.Held, &t.Immobilized, &t.Stunned, &t.Sleep,
		&t.Fly, &t.JumpPack, &t.Teleport, &t.Untouchable, &t.Intangible, &t.OnlyAffectsSelf,
		&t.ExperienceGain, &t.InfluenceGain, &t.PrestigeGain, &t.NullBool,
		&t.KnockUp, &t.KnockBack, &t.Repel, &t.Accuracy, &t.Radius, &t.Arc, &t.Range,
		&t.TimeToActivate, &t.RechargeTime, &t.InterruptTime, &t.EnduranceDiscount,
		&t.InsightDiscount, &t.Meter,
	)
	for i := range t.Elusivity {
		fields = append(fields, &t.Elusivity[i])
	}
	return append(fields, &t.Defense, &t.Absorb)
}
