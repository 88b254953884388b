package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RoundStatus represents the current state of a round.
type RoundStatus string

const (
	// StatusRunning indicates the round is expanding its frontier.
	StatusRunning RoundStatus = "Running"
	// StatusDone indicates the round has finished.
	StatusDone RoundStatus = "Done"
)

// RoundNode represents a single round in the UI list.
type RoundNode struct {
	Number     int
	Frontier   int
	Discovered int
	Total      int
	Status     RoundStatus
}

// Model represents the main TUI state.
type Model struct {
	Amount      int
	Rounds      []*RoundNode
	ListOffset  int
	ListHeight  int
	FollowMode  bool
	Interrupted bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Total returns the number of satchels found so far.
func (m *Model) Total() int {
	for i := len(m.Rounds) - 1; i >= 0; i-- {
		if m.Rounds[i].Status == StatusDone {
			return m.Rounds[i].Total
		}
	}
	return 0
}

func (m *Model) maxOffset() int {
	if m.ListHeight <= 0 || len(m.Rounds) <= m.ListHeight {
		return 0
	}
	return len(m.Rounds) - m.ListHeight
}

func (m *Model) follow() {
	if m.FollowMode {
		m.ListOffset = m.maxOffset()
	}
}

func (m *Model) findRound(n int) *RoundNode {
	for i := len(m.Rounds) - 1; i >= 0; i-- {
		if m.Rounds[i].Number == n {
			return m.Rounds[i]
		}
	}
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message switch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Interrupted = true
			return m, tea.Quit
		case "k", "up":
			if m.ListOffset > 0 {
				m.ListOffset--
				m.FollowMode = false
			}
		case "j", "down":
			if m.ListOffset < m.maxOffset() {
				m.ListOffset++
			}
			if m.ListOffset == m.maxOffset() {
				m.FollowMode = true
			}
		case "esc":
			m.FollowMode = true
			m.follow()
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(titleStyle.Render("SATCHEL") + "\n\n")
		footerHeight := lipgloss.Height(helpStyle.Render("q"))
		m.ListHeight = max(msg.Height-headerHeight-footerHeight, 1)
		m.ListOffset = min(m.ListOffset, m.maxOffset())
		m.follow()

	case MsgRoundStart:
		m.Rounds = append(m.Rounds, &RoundNode{
			Number:   msg.Round,
			Frontier: msg.Frontier,
			Status:   StatusRunning,
		})
		m.follow()

	case MsgRoundComplete:
		if node := m.findRound(msg.Round); node != nil {
			node.Discovered = msg.Discovered
			node.Total = msg.Total
			node.Status = StatusDone
		}
	}

	return m, nil
}
