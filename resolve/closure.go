package resolve

import (
	"log/slog"

	"powers-dict/model"
)

type (
	mark struct {
		ref        model.NameKey
		archetypes []*model.Archetype
	}

	entityResolution struct {
		param     *model.ParamEntCreate
		villain   *model.VillainDef
		powerRefs []model.NameKey
	}

	// pass collects what one scan over the included powers found. Nothing is written until the
	// scan is over, so a scan never sees its own marks.
	pass struct {
		marks      []mark
		entities   []entityResolution
		grants     []*model.ParamPower
		redirected []*model.BasePower
	}
)

func (p *pass) markAll(refs []model.NameKey, archetypes []*model.Archetype) {
	for _, ref := range refs {
		p.marks = append(p.marks, mark{ref: ref, archetypes: archetypes})
	}
}

// apply writes the pass and returns how many blocks and powers it resolved.
func (p *pass) apply(c *model.Collections) int {
	for _, entity := range p.entities {
		if entity.villain != nil {
			entity.param.VillainDef = entity.villain
			entity.param.PowerRefs = append(entity.param.PowerRefs, entity.powerRefs...)
		}
		entity.param.Resolved = true
	}
	for _, grant := range p.grants {
		grant.Resolved = true
	}
	for _, power := range p.redirected {
		power.RedirectsResolved = true
	}
	for _, m := range p.marks {
		MarkPowerForInclusion(c, m.ref, m.archetypes)
	}
	return len(p.entities) + len(p.grants) + len(p.redirected)
}

// Close repeats the resolution passes until one resolves nothing and returns the number of
// passes it took.
func Close(c *model.Collections) int {
	passes := 0
	for {
		passes++
		resolved := ResolveEntityDefsAndPowerGrants(c) + ResolvePowerRedirects(c)
		slog.Debug("resolution pass", "pass", passes, "resolved", resolved)
		if resolved == 0 {
			return passes
		}
	}
}

// ResolveEntityDefsAndPowerGrants follows the entity creation and power grant blocks of every
// included power.
func ResolveEntityDefsAndPowerGrants(c *model.Collections) int {
	p := &pass{}
	for _, power := range c.Powers.Values() {
		if !power.IncludeInOutput {
			continue
		}
		for _, template := range power.Templates() {
			switch param := template.Param.(type) {
			case *model.ParamEntCreate:
				if !param.Resolved {
					p.scanEntCreate(c, power, param)
				}
			case *model.ParamPower:
				if !param.Resolved {
					// only the flattened power names matter here
					p.markAll(param.PowerNames, power.Archetypes)
					p.grants = append(p.grants, param)
				}
			}
		}
	}
	return p.apply(c)
}

func (p *pass) scanEntCreate(c *model.Collections, power *model.BasePower, param *model.ParamEntCreate) {
	entity := entityResolution{param: param}
	if len(param.Redirects) > 0 {
		p.markAll(param.Redirects, power.Archetypes)
	} else if villain, ok := c.Villains.Get(param.EntityDef); ok {
		entity.villain = villain
		entity.powerRefs = villainPowerRefs(c, villain)
		p.markAll(entity.powerRefs, villainArchetypes(c, villain))
	}
	p.entities = append(p.entities, entity)
}

// villainPowerRefs lists the full names of the powers a villain has, expanding "set.*" to every
// power of the set.
func villainPowerRefs(c *model.Collections, villain *model.VillainDef) []model.NameKey {
	refs := make([]model.NameKey, 0, len(villain.Powers))
	for _, ref := range villain.Powers {
		if ref.Power.IsWildcard() {
			if set, ok := c.PowerSets.Get(ref.PowerSetName()); ok {
				refs = append(refs, set.PowerNames...)
			}
			continue
		}
		if power, ok := c.Powers.Get(ref.FullPowerName()); ok {
			refs = append(refs, power.FullName)
		}
	}
	return refs
}

func villainArchetypes(c *model.Collections, villain *model.VillainDef) []*model.Archetype {
	if villain.CharacterClassName.IsZero() {
		return nil
	}
	archetype, ok := c.VillainArchetypes.Get(model.NewNameKey("@" + villain.CharacterClassName.String()))
	if !ok {
		return nil
	}
	return []*model.Archetype{archetype}
}

// ResolvePowerRedirects includes the redirect targets of every included power.
func ResolvePowerRedirects(c *model.Collections) int {
	p := &pass{}
	for _, power := range c.Powers.Values() {
		if !power.IncludeInOutput || power.RedirectsResolved {
			continue
		}
		for _, redirect := range power.Redirects {
			if !redirect.FullName.IsZero() {
				p.markAll([]model.NameKey{redirect.FullName}, power.Archetypes)
			}
		}
		p.redirected = append(p.redirected, power)
	}
	return p.apply(c)
}
