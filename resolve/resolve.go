package resolve

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"powers-dict/config"
	"powers-dict/ds"
	"powers-dict/model"
)

var ErrNoTopLevelCategories = errors.New("No power categories to work on. Did you filter them all?")

type Options struct {
	// TopLevel lists the categories to keep, empty keeps all of them.
	TopLevel []model.NameKey
	// Global categories are attached to every archetype.
	Global          []model.NameKey
	FilterPowerSets []string
}

func NewOptions(cfg *config.PowersConfig) Options {
	return Options{
		TopLevel:        cfg.PowerCategoryKeys(),
		Global:          cfg.GlobalCategoryKeys(),
		FilterPowerSets: cfg.FilterPowerSets,
	}
}

// Run links the decoded collections into the category > set > power hierarchy and marks
// everything reachable from the top-level categories.
func Run(c *model.Collections, options Options) (*model.PowersDictionary, error) {
	begin := time.Now()

	if err := FlagTopLevel(c.PowerCategories, options.TopLevel); err != nil {
		return nil, err
	}
	MatchArchetypes(c, options.Global)
	MatchEnhancementCategories(c)
	if removed := FilterPowerSets(c, options.FilterPowerSets); removed > 0 {
		slog.Info("filtered power sets", "removed", removed)
	}
	Link(c)
	SeedTopLevel(c)
	passes := Close(c)

	slog.Info("resolved powers dictionary", "passes", passes, "elapsed", time.Since(begin))
	return &model.PowersDictionary{
		PowerCategories: c.PowerCategories.Values(),
		Archetypes:      c.Archetypes,
		AttribNames:     c.AttribNames,
	}, nil
}

// FlagTopLevel flags the named categories, or every category when names is empty.
func FlagTopLevel(categories *model.Keyed[model.PowerCategory], names []model.NameKey) error {
	if len(names) == 0 {
		for _, category := range categories.Values() {
			category.TopLevel = true
		}
		return nil
	}

	matched := 0
	for _, category := range categories.Values() {
		if lo.ContainsBy(names, category.Name.Equal) {
			category.TopLevel = true
			matched++
		}
	}
	if matched == 0 {
		return ErrNoTopLevelCategories
	}
	return nil
}

// MatchArchetypes attaches every archetype to the categories it draws powers from, plus the
// global ones.
func MatchArchetypes(c *model.Collections, global []model.NameKey) {
	for _, archetype := range c.Archetypes.Values() {
		attach := func(slot string, name model.NameKey) (*model.PowerCategory, bool) {
			category, ok := c.PowerCategories.Get(name)
			if !ok {
				return nil, false
			}
			slog.Debug("matched archetype", "archetype", archetype.Name, "slot", slot, "category", category.Name)
			category.Archetypes = append(category.Archetypes, archetype)
			return category, true
		}

		if category, ok := attach("primary", archetype.PrimaryCategory); ok {
			category.PriSec = model.PriSecPrimary
		}
		if category, ok := attach("secondary", archetype.SecondaryCategory); ok {
			category.PriSec = model.PriSecSecondary
		}
		attach("epic", archetype.EpicPoolCategory)
		attach("pool", archetype.PowerPoolCategory)
		for _, name := range global {
			attach("global", name)
		}
	}
}

// MatchEnhancementCategories tags each power a boost set can slot into with the set's group.
func MatchEnhancementCategories(c *model.Collections) {
	for _, boostSet := range c.BoostSets.Values() {
		if boostSet.GroupName == "" {
			continue
		}
		for _, name := range boostSet.Powers {
			if power, ok := c.Powers.Get(name); ok {
				power.AllowEnhancementSetCategory(boostSet.GroupName)
			}
		}
	}
}

// FilterPowerSets drops the power sets whose name contains any of filters.
func FilterPowerSets(c *model.Collections, filters []string) int {
	if len(filters) == 0 {
		return 0
	}
	return c.PowerSets.Retain(func(name model.NameKey, _ *model.BasePowerSet) bool {
		return !lo.ContainsBy(filters, name.PartialMatch)
	})
}

// Link fills in the handles behind the name lists, skipping names that point nowhere.
func Link(c *model.Collections) {
	for _, set := range c.PowerSets.Values() {
		set.Powers = lo.FilterMap(set.PowerNames, func(name model.NameKey, _ int) (*model.BasePower, bool) {
			return c.Powers.Get(name)
		})
	}
	for _, category := range c.PowerCategories.Values() {
		category.PowerSets = lo.FilterMap(category.PowerSetNames, func(name model.NameKey, _ int) (*model.BasePowerSet, bool) {
			return c.PowerSets.Get(name)
		})
	}
}

// SeedTopLevel includes everything under the top-level categories. A top-level category that
// ends up with nothing included stops being top-level.
func SeedTopLevel(c *model.Collections) {
	for _, category := range c.PowerCategories.Values() {
		if !category.TopLevel {
			continue
		}
		for _, set := range category.PowerSets {
			for _, power := range set.Powers {
				power.IncludeInOutput = true
				power.Archetypes = ds.ShallowCopy(category.Archetypes)
			}
			set.IncludeInOutput = lo.ContainsBy(set.Powers, func(power *model.BasePower) bool {
				return power.IncludeInOutput
			})
		}
		category.IncludeInOutput = lo.ContainsBy(category.PowerSets, func(set *model.BasePowerSet) bool {
			return set.IncludeInOutput
		})
		category.TopLevel = category.IncludeInOutput
	}
}

// MarkPowerForInclusion includes the power named by ref along with its set and category, and
// hands it the archetypes of whatever referenced it. It reports whether the power exists.
func MarkPowerForInclusion(c *model.Collections, ref model.NameKey, archetypes []*model.Archetype) bool {
	parts := ref.Split()
	if len(parts) != 3 {
		slog.Debug("skipping power reference without 3 parts", "ref", ref)
		return false
	}

	if category, ok := c.PowerCategories.Get(model.NewNameKey(parts[0])); ok {
		category.IncludeInOutput = true
	}
	if set, ok := c.PowerSets.Get(model.NewNameKeyFromParts(parts[0], parts[1])); ok {
		set.IncludeInOutput = true
	}
	power, ok := c.Powers.Get(ref)
	if !ok {
		return false
	}
	power.IncludeInOutput = true
	for _, archetype := range archetypes {
		known := lo.ContainsBy(power.Archetypes, func(other *model.Archetype) bool {
			return other == archetype
		})
		if !known {
			power.Archetypes = append(power.Archetypes, archetype)
		}
	}
	return true
}
