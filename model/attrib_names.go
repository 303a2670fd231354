package model

type (
	AttribName struct {
		Name        string `json:"name,omitempty"`
		DisplayName string `json:"display_name,omitempty"`
		IconName    string `json:"icon_name,omitempty"`
	}

	AttribNames struct {
		Damage    []*AttribName `json:"damage,omitempty"`
		Defense   []*AttribName `json:"defense,omitempty"`
		Boost     []*AttribName `json:"boost,omitempty"`
		Group     []*AttribName `json:"group,omitempty"`
		Mode      []*AttribName `json:"mode,omitempty"`
		Elusivity []*AttribName `json:"elusivity,omitempty"`
		StackKey  []*AttribName `json:"stack_key,omitempty"`
		// CharacterAttributes byte offset to localized attribute name
		AttrNames map[uint32]string `json:"attr_names,omitempty"`
	}
)

// AttribDisplayName names a SpecialAttrib for humans: the localized attribute name for plain
// offsets, the special attribute's own name otherwise.
func (n *AttribNames) AttribDisplayName(attrib SpecialAttrib) (string, bool) {
	if !attrib.IsCharacter() {
		return attrib.String(), true
	}
	name, ok := n.AttrNames[uint32(attrib)]
	return name, ok
}
