package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxSessions is how many sessions the history screen loads.
const maxSessions = 100

// HistoryModel is the session history screen.
type HistoryModel struct {
	store     *storage.Store
	player    string
	sessions  []storage.Session
	totals    storage.Totals
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates the history screen and loads the player's sessions.
func NewHistoryModel(store *storage.Store, player string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:  store,
		player: player,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the screen.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Score", Width: 9},
		{Title: "Rounds", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Level", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Title, totals, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads sessions and totals from the store.
func (m *HistoryModel) load() {
	m.sessions = nil
	m.totals = storage.Totals{}
	m.loadErr = nil

	if m.store != nil {
		sessions, err := m.store.RecentSessions(m.player, maxSessions)
		if err != nil {
			m.loadErr = err
		} else {
			m.sessions = sessions
		}
		if totals, err := m.store.Totals(m.player); err == nil {
			m.totals = totals
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = SessionRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SessionRow formats a session as a table row: date, score, rounds, time, level.
func SessionRow(s storage.Session) []string {
	return []string{
		s.CreatedAt.Local().Format("Jan 02 15:04"),
		fmt.Sprintf("%d - %d", s.Points, s.CPUPoints),
		fmt.Sprintf("%d", s.Rounds),
		FormatDuration(s.Duration),
		s.Difficulty,
	}
}

// FormatDuration renders a play time as m:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Resize adapts the table to a new terminal size.
func (m HistoryModel) Resize(width, height int) HistoryModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", m.width)))
	b.WriteString("\n\n")

	t := m.totals
	summary := fmt.Sprintf("%d sessions  |  Player %d - %d Computer  |  %d rounds  |  %s played",
		t.Sessions, t.Points, t.CPUPoints, t.Rounds, FormatDuration(t.PlayTime))
	b.WriteString(centerText(menuScoreStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nWin or lose a round to start the history!")
	}
	return m.table.View()
}

// Sessions returns the loaded sessions, newest first.
func (m HistoryModel) Sessions() []storage.Session {
	return m.sessions
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
