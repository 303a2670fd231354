package model

type (
	PowerNameRef struct {
		PowerCategory NameKey `json:"power_category"`
		PowerSet      NameKey `json:"power_set"`
		Power         NameKey `json:"power"`
		Level         int32   `json:"level"`
		Remove        int32   `json:"remove"`
		DontSetStance int32   `json:"dont_set_stance"`
	}

	VillainLevelDef struct {
		Level        int32    `json:"level"`
		DisplayNames []string `json:"display_names,omitempty"`
		Costumes     []string `json:"costumes,omitempty"`
		Experience   int32    `json:"experience"`
	}

	PetCommandStrings struct {
		Passive        []string `json:"passive,omitempty"`
		Defensive      []string `json:"defensive,omitempty"`
		Aggressive     []string `json:"aggressive,omitempty"`
		AttackTarget   []string `json:"attack_target,omitempty"`
		AttackNoTarget []string `json:"attack_no_target,omitempty"`
		StayHere       []string `json:"stay_here,omitempty"`
		UsePower       []string `json:"use_power,omitempty"`
		UsePowerNone   []string `json:"use_power_none,omitempty"`
		FollowMe       []string `json:"follow_me,omitempty"`
		GotoSpot       []string `json:"goto_spot,omitempty"`
		Dismiss        []string `json:"dismiss,omitempty"`
	}

	// VillainDef is an NPC template, powers that create pets point at one of these.
	VillainDef struct {
		Name               NameKey              `json:"name"`
		CharacterClassName NameKey              `json:"character_class_name"`
		Gender             Gender               `json:"gender"`
		Description        string               `json:"description,omitempty"`
		GroupDescription   string               `json:"group_description,omitempty"`
		DisplayClassName   string               `json:"display_class_name,omitempty"`
		AIConfig           string               `json:"ai_config,omitempty"`
		Group              int32                `json:"group"`
		Powers             []*PowerNameRef      `json:"powers,omitempty"`
		Levels             []*VillainLevelDef   `json:"levels,omitempty"`
		Rank               VillainRank          `json:"rank"`
		Ally               string               `json:"ally,omitempty"`
		Gang               string               `json:"gang,omitempty"`
		Exclusion          VillainExclusion     `json:"exclusion"`
		IgnoreCombatMods   bool                 `json:"ignore_combat_mods"`
		CopyCreatorMods    bool                 `json:"copy_creator_mods"`
		IgnoreReduction    bool                 `json:"ignore_reduction"`
		CanZone            bool                 `json:"can_zone"`
		SpawnLimit         int32                `json:"spawn_limit"`
		SpawnLimitMission  int32                `json:"spawn_limit_mission"`
		AdditionalRewards  []string             `json:"additional_rewards,omitempty"`
		FavoriteWeapon     string               `json:"favorite_weapon,omitempty"`
		SkillHPRewards     []string             `json:"skill_hp_rewards,omitempty"`
		SkillStatusRewards []string             `json:"skill_status_rewards,omitempty"`
		RewardScale        float32              `json:"reward_scale"`
		PowerTags          []string             `json:"power_tags,omitempty"`
		SpecialPetPower    string               `json:"special_pet_power,omitempty"`
		FileName           string               `json:"file_name,omitempty"`
		FileAge            uint32               `json:"file_age"`
		PetCommandStrings  []*PetCommandStrings `json:"pet_command_strings,omitempty"`
		PetVisibility      int32                `json:"pet_visibility"`
		PetCommandability  int32                `json:"pet_commandability"`
		CustomBadgeStat    string               `json:"custom_badge_stat,omitempty"`
		Flags              VillainDefFlag       `json:"flags"`
	}
)

// FullPowerName joins the three parts of the reference, "cat.set.power" or "cat.set.*".
func (r *PowerNameRef) FullPowerName() NameKey {
	return NewNameKeyFromParts(r.PowerCategory.String(), r.PowerSet.String(), r.Power.String())
}

// PowerSetName is "cat.set".
func (r *PowerNameRef) PowerSetName() NameKey {
	return NewNameKeyFromParts(r.PowerCategory.String(), r.PowerSet.String())
}
