package model

type (
	// Collections are the decoded files, before anything is linked.
	Collections struct {
		AttribNames       *AttribNames
		Archetypes        *Keyed[Archetype]
		VillainArchetypes *Keyed[Archetype]
		BoostSets         *Keyed[BoostSet]
		Villains          *Keyed[VillainDef]
		PowerCategories   *Keyed[PowerCategory]
		PowerSets         *Keyed[BasePowerSet]
		Powers            *Keyed[BasePower]
	}

	// PowersDictionary is the resolved graph.
	PowersDictionary struct {
		PowerCategories []*PowerCategory
		Archetypes      *Keyed[Archetype]
		AttribNames     *AttribNames
	}
)

// TopLevelCategories lists the categories that survived seeding, in load order.
func (d *PowersDictionary) TopLevelCategories() []*PowerCategory {
	categories := make([]*PowerCategory, 0)
	for _, category := range d.PowerCategories {
		if category.TopLevel {
			categories = append(categories, category)
		}
	}
	return categories
}
