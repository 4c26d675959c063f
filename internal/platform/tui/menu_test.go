package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

func TestProfileItemsDefaultFirst(t *testing.T) {
	cfg := config.DefaultBambooConfig()
	items := ProfileItems(cfg)
	if len(items) != len(cfg.Profiles) {
		t.Fatalf("items = %d, want %d", len(items), len(cfg.Profiles))
	}
	if items[0].Name != cfg.DefaultProfile {
		t.Errorf("first item = %q, want default %q", items[0].Name, cfg.DefaultProfile)
	}
	for _, it := range items {
		p, _ := cfg.Profile(it.Name)
		if it.Blocks != p.TotalBlocks() {
			t.Errorf("%s: blocks = %d, want %d", it.Name, it.Blocks, p.TotalBlocks())
		}
	}
}

func TestProfileMenuSelect(t *testing.T) {
	items := []ProfileItem{{Name: "enhanced", Blocks: 16, Sounds: true}, {Name: "basic", Blocks: 8}}
	var m tea.Model = NewProfileMenuModel(items, 60, 20)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // already at top
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped at bottom

	view := m.View()
	if !strings.Contains(view, "> basic") {
		t.Errorf("cursor should be on basic:\n%s", view)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := m.(ProfileMenuModel)
	if menu.Selected() == nil || menu.Selected().Name != "basic" {
		t.Fatalf("Selected = %+v, want basic", menu.Selected())
	}
	if cmd == nil {
		t.Error("selection should end the menu program")
	}
}

func TestProfileMenuBackAndQuit(t *testing.T) {
	items := []ProfileItem{{Name: "enhanced"}}

	m, _ := NewProfileMenuModel(items, 60, 20).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(ProfileMenuModel).WantsBack() {
		t.Error("esc should request back")
	}

	m, _ = NewProfileMenuModel(items, 60, 20).Update(runeKey('q'))
	menu := m.(ProfileMenuModel)
	if !menu.IsQuitting() || menu.Selected() != nil {
		t.Error("q should quit without a selection")
	}
}

func TestProfileMenuEmpty(t *testing.T) {
	m, _ := NewProfileMenuModel(nil, 60, 20).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(ProfileMenuModel).Selected() != nil {
		t.Error("empty menu should not select anything")
	}
}
