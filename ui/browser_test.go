package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/model"
)

func dictionary() *model.PowersDictionary {
	jab := model.NewBasePower()
	jab.FullName = model.NewNameKey("Melee.Punching.Jab")
	jab.DisplayName = "Jab"
	jab.Type = model.PowerTypeClick
	jab.IncludeInOutput = true
	jab.Archetypes = []*model.Archetype{{ClassKey: model.NewClassKey("Brute")}}

	hidden := model.NewBasePower()
	hidden.FullName = model.NewNameKey("Melee.Punching.Hidden")

	punching := &model.BasePowerSet{
		FullName:        model.NewNameKey("Melee.Punching"),
		PowerNames:      []model.NameKey{jab.FullName, hidden.FullName},
		Available:       []int32{0, 1},
		Powers:          []*model.BasePower{jab, hidden},
		IncludeInOutput: true,
	}
	melee := &model.PowerCategory{
		Name:            model.NewNameKey("Melee"),
		DisplayName:     "Melee Attacks",
		PowerSets:       []*model.BasePowerSet{punching},
		IncludeInOutput: true,
		TopLevel:        true,
	}
	skipped := &model.PowerCategory{Name: model.NewNameKey("Skipped")}
	return &model.PowersDictionary{PowerCategories: []*model.PowerCategory{melee, skipped}}
}

func press(t *testing.T, b Browser, keys ...tea.KeyMsg) Browser {
	for _, key := range keys {
		next, _ := b.Update(key)
		var ok bool
		b, ok = next.(Browser)
		require.True(t, ok)
	}
	return b
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestBrowser_View(t *testing.T) {
	b := NewBrowser(dictionary())

	view := b.View()
	assert.Contains(t, view, "> Melee (Melee Attacks) *")
	assert.NotContains(t, view, "Skipped")

	b = press(t, b, enter)
	assert.Contains(t, b.View(), "> Melee.Punching")

	b = press(t, b, enter)
	view = b.View()
	assert.Contains(t, view, " 1  Melee.Punching.Jab (Jab)")
	assert.NotContains(t, view, "Hidden")

	b = press(t, b, down, enter)
	view = b.View()
	assert.Contains(t, view, "Type: Click")
	assert.Contains(t, view, "Archetypes: @class_brute")

	// plain lines do not open anything
	b = press(t, b, enter)
	assert.Equal(t, 4, b.pages.Len())

	b = press(t, b, esc, esc, esc, esc)
	assert.Equal(t, 1, b.pages.Len())
	assert.Contains(t, b.View(), "Power categories")
}

func TestBrowser_Quit(t *testing.T) {
	b := NewBrowser(dictionary())
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowser_Scroll(t *testing.T) {
	dict := dictionary()
	b := NewBrowser(dict)
	next, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	b = next.(Browser)
	assert.Equal(t, 1, b.rows)

	b = press(t, b, enter, enter)
	assert.Contains(t, b.View(), "> ")
	assert.Equal(t, 0, b.pages.Peek().cursor)
}
