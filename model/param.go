package model

// AttribModParam is one of the eleven parameter blocks an AttribModTemplate may carry. The set
// is closed; a type switch over the Param* types is exhaustive.
type AttribModParam interface {
	ParamType() uint32
}

const (
	ParamTypeNone uint32 = iota
	ParamTypeCostume
	ParamTypeReward
	ParamTypeEntCreate
	ParamTypePower
	ParamTypePhase
	ParamTypeTeleport
	ParamTypeBehavior
	ParamTypeSZEValue
	ParamTypeToken
	ParamTypeEffectFilter
	ParamTypeParam11
)

type (
	ParamCostume struct {
		CostumeName string `json:"costume_name,omitempty"`
		Priority    int32  `json:"priority"`
	}

	ParamReward struct {
		Rewards []string `json:"rewards,omitempty"`
	}

	ParamEntCreate struct {
		EntityDef     NameKey   `json:"entity_def"`
		ClassName     string    `json:"class_name,omitempty"`
		CostumeName   string    `json:"costume_name,omitempty"`
		DisplayName   string    `json:"display_name,omitempty"`
		PriorityList  string    `json:"priority_list,omitempty"`
		AIConfig      string    `json:"ai_config,omitempty"`
		CategoryNames []NameKey `json:"category_names,omitempty"`
		PowerSetNames []NameKey `json:"powerset_names,omitempty"`
		PowerNames    []NameKey `json:"power_names,omitempty"`
		Redirects     []NameKey `json:"redirects,omitempty"`

		// filled in while resolving
		VillainDef *VillainDef `json:"-"`
		PowerRefs  []NameKey   `json:"power_refs,omitempty"`
		Resolved   bool        `json:"-"`
	}

	ParamPower struct {
		CategoryNames []NameKey `json:"category_names,omitempty"`
		PowerSetNames []NameKey `json:"powerset_names,omitempty"`
		PowerNames    []NameKey `json:"power_names,omitempty"`
		Count         int32     `json:"count"`
		Resolved      bool      `json:"-"`
	}

	ParamPhase struct {
		CombatPhases         []int32 `json:"combat_phases,omitempty"`
		VisionPhases         []int32 `json:"vision_phases,omitempty"`
		ExclusiveVisionPhase int32   `json:"exclusive_vision_phase"`
	}

	ParamTeleport struct {
		Destination string `json:"destination,omitempty"`
	}

	ParamBehavior struct {
		Behaviors []string `json:"behaviors,omitempty"`
	}

	ParamSZEValue struct {
		ScriptIDs    []string `json:"script_ids,omitempty"`
		ScriptValues []string `json:"script_values,omitempty"`
	}

	ParamToken struct {
		Tokens []string `json:"tokens,omitempty"`
	}

	ParamEffectFilter struct {
		Categories []string `json:"categories,omitempty"`
		PowerSets  []string `json:"powersets,omitempty"`
		Powers     []string `json:"powers,omitempty"`
		Tags       []string `json:"tags,omitempty"`
	}

	// Param11 is a block the client reads but whose meaning is unknown.
	Param11 struct {
		Unknown1  int32   `json:"unknown_1"`
		Unknown2  int32   `json:"unknown_2"`
		Unknown3  int32   `json:"unknown_3"`
		Unknown4  float32 `json:"unknown_4"`
		Unknown5  int32   `json:"unknown_5"`
		Unknown6  int32   `json:"unknown_6"`
		Unknown7  float32 `json:"unknown_7"`
		Unknown8  float32 `json:"unknown_8"`
		Unknown9  float32 `json:"unknown_9"`
		Unknown10 float32 `json:"unknown_10"`
	}
)

func (*ParamCostume) ParamType() uint32      { return ParamTypeCostume }
func (*ParamReward) ParamType() uint32       { return ParamTypeReward }
func (*ParamEntCreate) ParamType() uint32    { return ParamTypeEntCreate }
func (*ParamPower) ParamType() uint32        { return ParamTypePower }
func (*ParamPhase) ParamType() uint32        { return ParamTypePhase }
func (*ParamTeleport) ParamType() uint32     { return ParamTypeTeleport }
func (*ParamBehavior) ParamType() uint32     { return ParamTypeBehavior }
func (*ParamSZEValue) ParamType() uint32     { return ParamTypeSZEValue }
func (*ParamToken) ParamType() uint32        { return ParamTypeToken }
func (*ParamEffectFilter) ParamType() uint32 { return ParamTypeEffectFilter }
func (*Param11) ParamType() uint32           { return ParamTypeParam11 }
