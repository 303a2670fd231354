package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"powers-dict/ds"
	"powers-dict/model"
)

const defaultRows = 20

type (
	item struct {
		label string
		// nil for plain lines
		open func() *page
	}

	page struct {
		title  string
		items  []item
		cursor int
	}

	// Browser walks the resolved dictionary: categories, then sets, then powers.
	Browser struct {
		pages *ds.Stack[*page]
		rows  int
	}
)

func NewBrowser(dict *model.PowersDictionary) Browser {
	pages := ds.NewStack[*page]()
	pages.Push(categoriesPage(dict))
	return Browser{
		pages: pages,
		rows:  defaultRows,
	}
}

func categoriesPage(dict *model.PowersDictionary) *page {
	categories := lo.Filter(dict.PowerCategories, func(category *model.PowerCategory, _ int) bool {
		return category.IncludeInOutput
	})
	return &page{
		title: "Power categories",
		items: lo.Map(categories, func(category *model.PowerCategory, _ int) item {
			label := labelOf(category.Name, category.DisplayName)
			if category.TopLevel {
				label += " *"
			}
			return item{
				label: label,
				open:  func() *page { return powerSetsPage(category) },
			}
		}),
	}
}

func powerSetsPage(category *model.PowerCategory) *page {
	sets := lo.Filter(category.PowerSets, func(set *model.BasePowerSet, _ int) bool {
		return set.IncludeInOutput
	})
	return &page{
		title: category.Name.String(),
		items: lo.Map(sets, func(set *model.BasePowerSet, _ int) item {
			return item{
				label: labelOf(set.FullName, set.DisplayName),
				open:  func() *page { return powersPage(set) },
			}
		}),
	}
}

func powersPage(set *model.BasePowerSet) *page {
	powers := lo.Filter(set.Powers, func(power *model.BasePower, _ int) bool {
		return power.IncludeInOutput
	})
	return &page{
		title: set.FullName.String(),
		items: lo.Map(powers, func(power *model.BasePower, _ int) item {
			label := labelOf(power.FullName, power.DisplayName)
			if level, ok := set.AvailableLevel(power.FullName); ok {
				label = fmt.Sprintf("%2d  %s", level, label)
			}
			return item{
				label: label,
				open:  func() *page { return powerPage(power) },
			}
		}),
	}
}

func powerPage(power *model.BasePower) *page {
	lines := []string{
		"Display name: " + power.DisplayName,
		"Type: " + power.Type.String(),
		fmt.Sprintf("Accuracy: %g", power.Accuracy),
		fmt.Sprintf("Range: %g", power.Range),
		fmt.Sprintf("Recharge: %gs", power.RechargeTime),
		fmt.Sprintf("Endurance: %g", power.EnduranceCost),
		fmt.Sprintf("Effect groups: %d", len(power.EffectGroups)),
		"Archetypes: " + strings.Join(lo.Map(power.Archetypes, func(archetype *model.Archetype, _ int) string {
			return archetype.ClassKey.String()
		}), ", "),
		"Enhancement sets: " + strings.Join(power.EnhancementSetCategories(), ", "),
	}
	for _, redirect := range power.Redirects {
		lines = append(lines, "Redirects to: "+redirect.FullName.String())
	}
	for _, template := range power.Templates() {
		if entCreate, ok := template.Param.(*model.ParamEntCreate); ok && entCreate.VillainDef != nil {
			lines = append(lines, "Summons: "+entCreate.VillainDef.Name.String())
		}
	}
	return &page{
		title: power.FullName.String(),
		items: lo.Map(lines, func(line string, _ int) item {
			return item{label: line}
		}),
	}
}

func labelOf(name model.NameKey, displayName string) string {
	if displayName == "" {
		return name.String()
	}
	return fmt.Sprintf("%s (%s)", name, displayName)
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, blank line and help line
		b.rows = max(msg.Height-3, 1)
	case tea.KeyMsg:
		current := b.pages.Peek()
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "up", "k":
			current.cursor = max(current.cursor-1, 0)
		case "down", "j":
			current.cursor = min(current.cursor+1, max(len(current.items)-1, 0))
		case "enter", "right", "l":
			if len(current.items) > 0 && current.items[current.cursor].open != nil {
				b.pages.Push(current.items[current.cursor].open())
			}
		case "esc", "left", "h", "backspace":
			if b.pages.Len() > 1 {
				b.pages.Pop()
			}
		}
	}
	return b, nil
}

func (b Browser) View() string {
	current := b.pages.Peek()
	builder := strings.Builder{}
	builder.WriteString(current.title + "\n\n")

	begin := 0
	if current.cursor >= b.rows {
		begin = current.cursor - b.rows + 1
	}
	end := min(begin+b.rows, len(current.items))
	for i := begin; i < end; i++ {
		cursor := "  "
		if i == current.cursor {
			cursor = "> "
		}
		builder.WriteString(cursor + current.items[i].label + "\n")
	}
	if len(current.items) == 0 {
		builder.WriteString("  (nothing included)\n")
	}

	builder.WriteString("\nj/k move, enter open, esc back, q quit\n")
	return builder.String()
}
