package model

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"powers-dict/ds"
)

type (
	RGBA [4]uint8
	Vec3 [3]float32

	BasePower struct {
		FullName   NameKey     `json:"full_name"`
		SourceFile string      `json:"source_file,omitempty"`
		Name       string      `json:"name,omitempty"`
		SourceName string      `json:"source_name,omitempty"`
		System     PowerSystem `json:"system"`

		AutoIssue          bool `json:"auto_issue"`
		AutoIssueSaveLevel bool `json:"auto_issue_save_level"`
		Free               bool `json:"free"`

		DisplayName                  string `json:"display_name,omitempty"`
		DisplayHelp                  string `json:"display_help,omitempty"`
		DisplayShortHelp             string `json:"display_short_help,omitempty"`
		DisplayTargetHelp            string `json:"display_target_help,omitempty"`
		DisplayTargetShortHelp       string `json:"display_target_short_help,omitempty"`
		DisplayAttackerAttack        string `json:"display_attacker_attack,omitempty"`
		DisplayAttackerAttackFloater string `json:"display_attacker_attack_floater,omitempty"`
		DisplayAttackerHit           string `json:"display_attacker_hit,omitempty"`
		DisplayVictimHit             string `json:"display_victim_hit,omitempty"`
		DisplayConfirm               string `json:"display_confirm,omitempty"`
		DisplayFloatRewarded         string `json:"display_float_rewarded,omitempty"`
		DisplayDefenseFloat          string `json:"display_defense_float,omitempty"`
		IconName                     string `json:"icon_name,omitempty"`

		Type        PowerType       `json:"type"`
		NumAllowed  int32           `json:"num_allowed"`
		AttackTypes []SpecialAttrib `json:"attack_types,omitempty"`

		BuyRequires      []string `json:"buy_requires,omitempty"`
		ActivateRequires []string `json:"activate_requires,omitempty"`
		SlotRequires     []string `json:"slot_requires,omitempty"`
		TargetRequires   []string `json:"target_requires,omitempty"`
		RewardRequires   []string `json:"reward_requires,omitempty"`
		AuctionRequires  []string `json:"auction_requires,omitempty"`
		RewardFallback   string   `json:"reward_fallback,omitempty"`

		Accuracy         float32              `json:"accuracy"`
		NearGround       bool                 `json:"near_ground"`
		TargetNearGround bool                 `json:"target_near_ground"`
		DeathCastable    DeathCastableSetting `json:"death_castable"`

		CastThroughHold         bool `json:"cast_through_hold"`
		CastThroughSleep        bool `json:"cast_through_sleep"`
		CastThroughStun         bool `json:"cast_through_stun"`
		CastThroughTerrorize    bool `json:"cast_through_terrorize"`
		ToggleIgnoreHold        bool `json:"toggle_ignore_hold"`
		ToggleIgnoreSleep       bool `json:"toggle_ignore_sleep"`
		ToggleIgnoreStun        bool `json:"toggle_ignore_stun"`
		IgnoreLevelBought       bool `json:"ignore_level_bought"`
		ShootThroughUntouchable bool `json:"shoot_through_untouchable"`
		InterruptLikeSleep      bool `json:"interrupt_like_sleep"`

		AIReport       AIReport   `json:"ai_report"`
		EffectArea     EffectArea `json:"effect_area"`
		MaxTargetsHit  int32      `json:"max_targets_hit"`
		MaxTargetsExpr []string   `json:"max_targets_expr,omitempty"`
		Radius         float32    `json:"radius"`
		Arc            float32    `json:"arc"`
		ChainDelay     float32    `json:"chain_delay"`
		ChainEff       []string   `json:"chain_eff,omitempty"`
		ChainFork      []int32    `json:"chain_fork,omitempty"`
		Unknown        []int32    `json:"-"`
		BoxOffset      Vec3       `json:"box_offset"`
		BoxSize        Vec3       `json:"box_size"`

		Range           float32  `json:"range"`
		RangeSecondary  float32  `json:"range_secondary"`
		TimeToActivate  float32  `json:"time_to_activate"`
		RechargeTime    float32  `json:"recharge_time"`
		ActivatePeriod  float32  `json:"activate_period"`
		EnduranceCost   float32  `json:"endurance_cost"`
		InsightCost     float32  `json:"insight_cost"`
		TimeToConfirm   int32    `json:"time_to_confirm"`
		SelfConfirm     bool     `json:"self_confirm"`
		ConfirmRequires []string `json:"confirm_requires,omitempty"`
		DestroyOnLimit  bool     `json:"destroy_on_limit"`
		StackingUsage   bool     `json:"stacking_usage"`
		NumCharges      int32    `json:"num_charges"`
		MaxNumCharges   int32    `json:"max_num_charges"`

		UsageTime         float32 `json:"usage_time"`
		MaxUsageTime      float32 `json:"max_usage_time"`
		Lifetime          float32 `json:"lifetime"`
		MaxLifetime       float32 `json:"max_lifetime"`
		LifetimeInGame    float32 `json:"lifetime_in_game"`
		MaxLifetimeInGame float32 `json:"max_lifetime_in_game"`
		InterruptTime     float32 `json:"interrupt_time"`

		TargetVisibility          TargetVisibility `json:"target_visibility"`
		TargetType                TargetType       `json:"target_type"`
		TargetTypeSecondary       TargetType       `json:"target_type_secondary"`
		AutoHit                   []TargetType     `json:"auto_hit,omitempty"`
		Affected                  []TargetType     `json:"affected,omitempty"`
		TargetsThroughVisionPhase bool             `json:"targets_through_vision_phase"`

		BoostsAllowed   []SpecialAttrib `json:"boosts_allowed,omitempty"`
		GroupMembership []SpecialAttrib `json:"group_membership,omitempty"`
		ModesRequired   []SpecialAttrib `json:"modes_required,omitempty"`
		ModesDisallowed []SpecialAttrib `json:"modes_disallowed,omitempty"`
		AIGroups        []string        `json:"ai_groups,omitempty"`

		Redirects    []*PowerRedirect `json:"redirects,omitempty"`
		EffectGroups []*EffectGroup   `json:"effect_groups,omitempty"`

		IgnoreStrength  bool             `json:"ignore_strength"`
		ShowBuffIcon    bool             `json:"show_buff_icon"`
		ShowInInventory ShowPowerSetting `json:"show_in_inventory"`
		ShowInManage    bool             `json:"show_in_manage"`
		ShowInInfo      bool             `json:"show_in_info"`
		Deletable       bool             `json:"deletable"`
		Tradeable       bool             `json:"tradeable"`
		MaxBoosts       int32            `json:"max_boosts"`
		DoNotSave       bool             `json:"do_not_save"`

		BoostIgnoreEffectiveness bool   `json:"boost_ignore_effectiveness"`
		BoostAlwaysCountForSet   bool   `json:"boost_always_count_for_set"`
		BoostTradeable           bool   `json:"boost_tradeable"`
		BoostCombinable          bool   `json:"boost_combinable"`
		BoostAccountBound        bool   `json:"boost_account_bound"`
		BoostBoostable           bool   `json:"boost_boostable"`
		BoostUsePlayerLevel      bool   `json:"boost_use_player_level"`
		BoostCatalystConversion  string `json:"boost_catalyst_conversion,omitempty"`
		StoreProduct             string `json:"store_product,omitempty"`
		BoostLicenseLevel        int32  `json:"boost_license_level"`
		MinSlotLevel             int32  `json:"min_slot_level"`
		MaxSlotLevel             int32  `json:"max_slot_level"`
		MaxBoostLevel            int32  `json:"max_boost_level"`

		Vars            []SpecialAttrib `json:"vars,omitempty"`
		ToggleDroppable ToggleDroppable `json:"toggle_droppable"`
		ProcAllowed     ProcAllowed     `json:"proc_allowed"`
		HighlightEval   []string        `json:"highlight_eval,omitempty"`
		HighlightIcon   string          `json:"highlight_icon,omitempty"`
		HighlightRing   RGBA            `json:"highlight_ring"`

		TravelSuppression    float32 `json:"travel_suppression"`
		PreferenceMultiplier float32 `json:"preference_multiplier"`
		DontSetStance        bool    `json:"dont_set_stance"`
		PointVal             float32 `json:"point_val"`
		PointMultiplier      float32 `json:"point_multiplier"`
		ChainIntoPowerName   string  `json:"chain_into_power_name,omitempty"`

		InstanceLocked                bool     `json:"instance_locked"`
		IsEnvironmentHit              bool     `json:"is_environment_hit"`
		ShuffleTargetList             bool     `json:"shuffle_target_list"`
		ForceLevelBought              int32    `json:"force_level_bought"`
		RefreshesOnActivePlayerChange bool     `json:"refreshes_on_active_player_change"`
		Cancelable                    bool     `json:"cancelable"`
		IgnoreToggleMaxDistance       bool     `json:"ignore_toggle_max_distance"`
		ServerTrayPriority            int32    `json:"server_tray_priority"`
		ServerTrayRequires            []string `json:"server_tray_requires,omitempty"`
		AbusiveBuff                   bool     `json:"abusive_buff"`

		PositionCenter   ModTarget `json:"position_center"`
		PositionDistance float32   `json:"position_distance"`
		PositionHeight   float32   `json:"position_height"`
		PositionYaw      float32   `json:"position_yaw"`
		FaceTarget       bool      `json:"face_target"`

		AttribCache []SpecialAttrib  `json:"attrib_cache,omitempty"`
		FX          PowerFX          `json:"fx"`
		CustomFX    []*CustomPowerFX `json:"custom_fx,omitempty"`

		// filled in while resolving
		EnhancementSetCategoriesAllowed *linkedhashset.Set `json:"-"`
		Archetypes                      []*Archetype       `json:"-"`
		IncludeInOutput                 bool               `json:"include_in_output"`
		RedirectsResolved               bool               `json:"-"`
	}

	PowerRedirect struct {
		FullName   NameKey  `json:"full_name"`
		Requires   []string `json:"requires,omitempty"`
		ShowInInfo bool     `json:"show_in_info"`
	}

	EffectGroup struct {
		Tags           []string             `json:"tags,omitempty"`
		Chance         float32              `json:"chance"`
		ProcsPerMinute float32              `json:"procs_per_minute"`
		Delay          float32              `json:"delay"`
		RadiusInner    float32              `json:"radius_inner"`
		RadiusOuter    float32              `json:"radius_outer"`
		Requires       []string             `json:"requires,omitempty"`
		Flags          EffectGroupFlag      `json:"flags"`
		EvalFlags      uint32               `json:"eval_flags"`
		Templates      []*AttribModTemplate `json:"templates,omitempty"`
		EffectGroups   []*EffectGroup       `json:"effect_groups,omitempty"`
	}

	AttribModTargetInfo struct {
		MarkerNames []string `json:"marker_names,omitempty"`
		MarkerCount []int32  `json:"marker_count,omitempty"`
	}

	SuppressPair struct {
		Event   int32  `json:"event"`
		Seconds uint32 `json:"seconds"`
		Always  bool   `json:"always"`
	}

	AttribModMessages struct {
		DisplayAttackerHit  string `json:"display_attacker_hit,omitempty"`
		DisplayVictimHit    string `json:"display_victim_hit,omitempty"`
		DisplayFloat        string `json:"display_float,omitempty"`
		DisplayDefenseFloat string `json:"display_defense_float,omitempty"`
	}

	AttribModFX struct {
		ContinuingBits  []int32 `json:"continuing_bits,omitempty"`
		ContinuingFX    string  `json:"continuing_fx,omitempty"`
		ConditionalBits []int32 `json:"conditional_bits,omitempty"`
		ConditionalFX   string  `json:"conditional_fx,omitempty"`
	}

	AttribModTemplate struct {
		Attribs         []SpecialAttrib      `json:"attribs,omitempty"`
		Aspect          uint32               `json:"aspect"`
		ApplicationType ModApplicationType   `json:"application_type"`
		Type            ModType              `json:"type"`
		Target          ModTarget            `json:"target"`
		TargetInfo      *AttribModTargetInfo `json:"target_info,omitempty"`
		Table           string               `json:"table,omitempty"`
		Scale           float32              `json:"scale"`
		Duration        ModDuration          `json:"duration"`
		Magnitude       float32              `json:"magnitude"`
		DurationExpr    []string             `json:"duration_expr,omitempty"`
		MagnitudeExpr   []string             `json:"magnitude_expr,omitempty"`
		Delay           float32              `json:"delay"`
		Period          float32              `json:"period"`
		TickChance      float32              `json:"tick_chance"`
		DelayedRequires []string             `json:"delayed_requires,omitempty"`
		CasterStackType CasterStackType      `json:"caster_stack_type"`
		StackType       StackType            `json:"stack_type"`
		StackLimit      int32                `json:"stack_limit"`
		StackKey        int32                `json:"stack_key"`
		CancelEvents    []PowerEvent         `json:"cancel_events,omitempty"`
		Suppress        []*SuppressPair      `json:"suppress,omitempty"`
		BoostModAllowed SpecialAttrib        `json:"boost_mod_allowed"`
		Flags           AttribModFlag        `json:"flags"`
		Messages        *AttribModMessages   `json:"messages,omitempty"`
		FX              *AttribModFX         `json:"fx,omitempty"`
		Param           AttribModParam       `json:"param,omitempty"`
	}

	PowerFX struct {
		SourceFile        string   `json:"source_file,omitempty"`
		AttackBits        []int32  `json:"attack_bits,omitempty"`
		BlockBits         []int32  `json:"block_bits,omitempty"`
		WindUpBits        []int32  `json:"wind_up_bits,omitempty"`
		HitBits           []int32  `json:"hit_bits,omitempty"`
		DeathBits         []int32  `json:"death_bits,omitempty"`
		ActivationBits    []int32  `json:"activation_bits,omitempty"`
		DeactivationBits  []int32  `json:"deactivation_bits,omitempty"`
		InitialAttackBits []int32  `json:"initial_attack_bits,omitempty"`
		ContinuingBits    []int32  `json:"continuing_bits,omitempty"`
		ConditionalBits   []int32  `json:"conditional_bits,omitempty"`
		ActivationFX      string   `json:"activation_fx,omitempty"`
		DeactivationFX    string   `json:"deactivation_fx,omitempty"`
		AttackFX          string   `json:"attack_fx,omitempty"`
		SecondaryAttackFX string   `json:"secondary_attack_fx,omitempty"`
		HitFX             string   `json:"hit_fx,omitempty"`
		WindUpFX          string   `json:"wind_up_fx,omitempty"`
		BlockFX           string   `json:"block_fx,omitempty"`
		DeathFX           string   `json:"death_fx,omitempty"`
		InitialAttackFX   string   `json:"initial_attack_fx,omitempty"`
		ContinuingFX      []string `json:"continuing_fx,omitempty"`
		ConditionalFX     []string `json:"conditional_fx,omitempty"`
		ModeBits          []int32  `json:"mode_bits,omitempty"`

		FramesBeforeHit           int32   `json:"frames_before_hit"`
		FramesBeforeSecondaryHit  int32   `json:"frames_before_secondary_hit"`
		DelayedHit                bool    `json:"delayed_hit"`
		FramesAttack              int32   `json:"frames_attack"`
		InitialFramesBeforeHit    int32   `json:"initial_frames_before_hit"`
		InitialAttackFXFrameDelay int32   `json:"initial_attack_fx_frame_delay"`
		ProjectileSpeed           float32 `json:"projectile_speed"`
		SecondaryProjectileSpeed  float32 `json:"secondary_projectile_speed"`
		InitialFramesBeforeBlock  int32   `json:"initial_frames_before_block"`
		IgnoreAttackTimeErrors    string  `json:"ignore_attack_time_errors,omitempty"`
		FramesBeforeBlock         int32   `json:"frames_before_block"`
		FXImportant               bool    `json:"fx_important"`
		TintPrimary               RGBA    `json:"tint_primary"`
		TintSecondary             RGBA    `json:"tint_secondary"`
		HideOriginal              bool    `json:"hide_original"`
	}

	CustomPowerFX struct {
		Token       string   `json:"token,omitempty"`
		AltThemes   []string `json:"alt_themes,omitempty"`
		SourceFile  string   `json:"source_file,omitempty"`
		Category    string   `json:"category,omitempty"`
		DisplayName string   `json:"display_name,omitempty"`
		FX          PowerFX  `json:"fx"`
		PaletteName string   `json:"palette_name,omitempty"`
	}
)

const (
	DefaultFramesBeforeHit = 15
	DefaultFramesAttack    = 35
)

func NewBasePower() *BasePower {
	return &BasePower{
		EnhancementSetCategoriesAllowed: linkedhashset.New(),
	}
}

// AllowEnhancementSetCategory records a boost set group name usable in this power, once.
func (p *BasePower) AllowEnhancementSetCategory(groupName string) {
	p.EnhancementSetCategoriesAllowed.Add(groupName)
}

func (p *BasePower) EnhancementSetCategories() []string {
	categories := make([]string, 0, p.EnhancementSetCategoriesAllowed.Size())
	for _, value := range p.EnhancementSetCategoriesAllowed.Values() {
		categories = append(categories, value.(string))
	}
	return categories
}

// WalkEffectGroups visits every group of the tree, children after their parent.
func (p *BasePower) WalkEffectGroups(visit func(group *EffectGroup)) {
	pending := ds.NewStack[*EffectGroup]()
	for i := len(p.EffectGroups) - 1; i >= 0; i-- {
		pending.Push(p.EffectGroups[i])
	}
	for pending.Len() > 0 {
		group := pending.Pop()
		visit(group)
		for i := len(group.EffectGroups) - 1; i >= 0; i-- {
			pending.Push(group.EffectGroups[i])
		}
	}
}

// Templates lists every attrib mod template of the effect group tree.
func (p *BasePower) Templates() []*AttribModTemplate {
	templates := make([]*AttribModTemplate, 0)
	p.WalkEffectGroups(func(group *EffectGroup) {
		templates = append(templates, group.Templates...)
	})
	return templates
}
