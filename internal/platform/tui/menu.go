package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one selectable entry of the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuResetScore
	MenuHistory
	MenuQuit
)

// String returns the label shown in the menu.
func (i MenuItem) String() string {
	switch i {
	case MenuPlay:
		return "Play"
	case MenuResetScore:
		return "Reset score"
	case MenuHistory:
		return "History"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle()
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuItems returns the entries currently on offer.
// Reset score only appears once either side has scored.
func (m AppModel) MenuItems() []MenuItem {
	items := []MenuItem{MenuPlay}
	if !m.sim.Score().IsZero() {
		items = append(items, MenuResetScore)
	}
	if m.opts.Store != nil {
		items = append(items, MenuHistory)
	}
	return append(items, MenuQuit)
}

// handleMenuKey processes keyboard input for menu navigation.
func (m AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.MenuItems()

	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.menuKeys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.menuKeys.Select):
		m.cursor = min(m.cursor, len(items)-1)
		return m.selectMenuItem(items[m.cursor])
	}

	return m, nil
}

// selectMenuItem runs the chosen menu entry.
func (m AppModel) selectMenuItem(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuPlay:
		m.enterCourt()
	case MenuResetScore:
		m.sim.ResetScore()
		m.cursor = 0
		m.logger.Info("score reset")
	case MenuHistory:
		m.history = NewHistoryModel(m.opts.Store, m.opts.Player, m.width, m.height)
		m.view = viewHistory
	case MenuQuit:
		return m.quit()
	}
	return m, nil
}

// menuView renders the main menu.
func (m AppModel) menuView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P O N G"), m.width))
	b.WriteString("\n\n")

	score := m.sim.Score()
	b.WriteString(centerText(menuScoreStyle.Render(fmt.Sprintf("Player - %d", score.Player)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuScoreStyle.Render(fmt.Sprintf("Computer - %d", score.Computer)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.MenuItems() {
		style := menuItemStyle
		cursor := "  "
		if i == m.cursor {
			style = menuSelectedStyle
			cursor = "> "
		}
		b.WriteString(centerText(cursor+style.Render(fmt.Sprintf(" %-12s", item)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.menuKeys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
