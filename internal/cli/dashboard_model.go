package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardLoader func(p period) (dashboardData, error)

// dashboardModel is the interactive month view. Weeks start collapsed; the
// cursor moves between weeks.
type dashboardModel struct {
	load       dashboardLoader
	data       dashboardData
	cursor     int
	expanded   map[int]bool
	err        error
	termWidth  int
	termHeight int
}

func newDashboardModel(data dashboardData, load dashboardLoader) dashboardModel {
	return dashboardModel{
		load:       load,
		data:       data,
		expanded:   map[int]bool{},
		termWidth:  100,
		termHeight: 40,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.data.weeks)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ":
			if m.cursor < len(m.data.weeks) {
				wk := m.data.weeks[m.cursor].Week
				m.expanded[wk] = !m.expanded[wk]
			}
		case "left", "h":
			return m.switchMonth(m.data.period.prev()), nil
		case "right", "l":
			return m.switchMonth(m.data.period.next()), nil
		}
	}
	return m, nil
}

// switchMonth reloads the data for p and collapses every week. On error the
// current month stays and the error is shown in the footer.
func (m dashboardModel) switchMonth(p period) dashboardModel {
	data, err := m.load(p)
	if err != nil {
		m.err = err
		return m
	}
	m.data = data
	m.err = nil
	m.cursor = 0
	m.expanded = map[int]bool{}
	return m
}

func (m dashboardModel) View() string {
	s := renderDashboard(m.data, m.expanded, m.cursor)
	s += "\n" + footerStyle.Render("←/→ month · ↑/↓ week · enter expand · q quit")
	if m.err != nil {
		s += "\n" + Error(m.err.Error())
	}
	return s
}
