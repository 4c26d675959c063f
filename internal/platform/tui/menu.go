package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

// Menu styles
var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// ProfileItem is a selectable profile in the menu.
type ProfileItem struct {
	Name        string
	Description string
	Blocks      int
	Sounds      bool
}

// ProfileItems lists the profiles of a configuration, default first.
func ProfileItems(cfg config.BambooConfig) []ProfileItem {
	names := cfg.ProfileNames()
	items := make([]ProfileItem, 0, len(names))
	for _, name := range names {
		p, err := cfg.Profile(name)
		if err != nil {
			continue
		}
		item := ProfileItem{
			Name:        name,
			Description: p.Description,
			Blocks:      p.TotalBlocks(),
			Sounds:      p.Sounds,
		}
		if name == cfg.DefaultProfile {
			items = append([]ProfileItem{item}, items...)
		} else {
			items = append(items, item)
		}
	}
	return items
}

// ProfileMenuModel lets users choose a game profile before playing.
type ProfileMenuModel struct {
	items    []ProfileItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected *ProfileItem
	quitting bool
	back     bool
}

// NewProfileMenuModel creates a new profile selection model.
func NewProfileMenuModel(items []ProfileItem, width, height int) ProfileMenuModel {
	h := help.New()
	h.Width = width
	return ProfileMenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the model.
func (m ProfileMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ProfileMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m ProfileMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the profile list.
func (m ProfileMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B A M B O O   B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Select a profile"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		sound := ""
		if item.Sounds {
			sound = ", sounds"
		}
		line := fmt.Sprintf("%-10s %2d blocks%s", item.Name, item.Blocks, sound)
		if i == m.cursor {
			b.WriteString(centerText(menuCursorStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText(menuItemStyle.Render("  "+line), m.width))
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.items) && m.items[m.cursor].Description != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuSubtitleStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected profile, or nil if none selected.
func (m ProfileMenuModel) Selected() *ProfileItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m ProfileMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ProfileMenuModel) WantsBack() bool {
	return m.back
}

// centerText centers text within given width, measuring styled text by
// its visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
