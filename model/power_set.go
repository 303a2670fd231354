package model

type (
	BasePowerSet struct {
		SourceFile               string           `json:"source_file,omitempty"`
		FullName                 NameKey          `json:"full_name"`
		Name                     string           `json:"name,omitempty"`
		System                   PowerSystem      `json:"system"`
		IsShared                 bool             `json:"is_shared"`
		DisplayName              string           `json:"display_name,omitempty"`
		DisplayHelp              string           `json:"display_help,omitempty"`
		DisplayShortHelp         string           `json:"display_short_help,omitempty"`
		IconName                 string           `json:"icon_name,omitempty"`
		CostumeKeys              []string         `json:"costume_keys,omitempty"`
		CostumeParts             []string         `json:"costume_parts,omitempty"`
		AccountRequires          string           `json:"account_requires,omitempty"`
		AccountTooltip           string           `json:"account_tooltip,omitempty"`
		AccountProduct           string           `json:"account_product,omitempty"`
		SetBuyRequires           []string         `json:"set_buy_requires,omitempty"`
		SetBuyRequiresFailedText string           `json:"set_buy_requires_failed_text,omitempty"`
		ShowInInventory          ShowPowerSetting `json:"show_in_inventory"`
		ShowInManage             bool             `json:"show_in_manage"`
		ShowInInfo               bool             `json:"show_in_info"`
		SpecializeAt             int32            `json:"specialize_at"`
		SpecializeRequires       []string         `json:"specialize_requires,omitempty"`
		PowerNames               []NameKey        `json:"power_names"`
		// parallel to PowerNames
		Available        []int32 `json:"available,omitempty"`
		AIMaxLevel       []int32 `json:"ai_max_level,omitempty"`
		AIMinRankCon     []int32 `json:"ai_min_rank_con,omitempty"`
		AIMaxRankCon     []int32 `json:"ai_max_rank_con,omitempty"`
		MinDifficulty    []int32 `json:"min_difficulty,omitempty"`
		MaxDifficulty    []int32 `json:"max_difficulty,omitempty"`
		ForceLevelBought int32   `json:"force_level_bought"`

		Powers          []*BasePower `json:"powers,omitempty"`
		IncludeInOutput bool         `json:"include_in_output"`
	}

	PowerCategory struct {
		SourceFile       string           `json:"source_file,omitempty"`
		Name             NameKey          `json:"name"`
		DisplayName      string           `json:"display_name,omitempty"`
		DisplayHelp      string           `json:"display_help,omitempty"`
		DisplayShortHelp string           `json:"display_short_help,omitempty"`
		PowerSetNames    []NameKey        `json:"powerset_names"`
		PowerSets        []*BasePowerSet  `json:"powersets,omitempty"`
		Archetypes       []*Archetype     `json:"-"`
		PriSec           PrimarySecondary `json:"pri_sec"`
		IncludeInOutput  bool             `json:"include_in_output"`
		TopLevel         bool             `json:"top_level"`
	}
)

// AvailableLevel is the level the named power becomes available at, counting from 1.
func (s *BasePowerSet) AvailableLevel(powerName NameKey) (int32, bool) {
	for i, name := range s.PowerNames {
		if i < len(s.Available) && name.Equal(powerName) {
			return s.Available[i] + 1, true
		}
	}
	return 0, false
}

// ArchetypeNames lists the class keys of the archetypes attached to the category.
func (c *PowerCategory) ArchetypeNames() []string {
	names := make([]string, 0, len(c.Archetypes))
	for _, archetype := range c.Archetypes {
		names = append(names, archetype.ClassKey.String())
	}
	return names
}
