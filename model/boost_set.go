package model

type (
	BoostList struct {
		Boosts []NameKey `json:"boosts"`
	}

	BoostSetBonus struct {
		DisplayName string `json:"display_name,omitempty"`
		MinBoosts   int32  `json:"min_boosts"`
		// 0 means no max
		MaxBoosts  int32     `json:"max_boosts"`
		Requires   []string  `json:"requires,omitempty"`
		AutoPowers []NameKey `json:"auto_powers,omitempty"`
		BonusPower NameKey   `json:"bonus_power"`
	}

	BoostSet struct {
		Name             NameKey          `json:"name"`
		DisplayName      string           `json:"display_name,omitempty"`
		GroupName        string           `json:"group_name,omitempty"`
		ConversionGroups []string         `json:"conversion_groups,omitempty"`
		Powers           []NameKey        `json:"powers,omitempty"`
		BoostLists       []*BoostList     `json:"boost_lists,omitempty"`
		Bonuses          []*BoostSetBonus `json:"bonuses,omitempty"`
		MinLevel         int32            `json:"min_level"`
		MaxLevel         int32            `json:"max_level"`
		StoreProduct     string           `json:"store_product,omitempty"`
	}
)
