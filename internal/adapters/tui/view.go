package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/satchel/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	title := fmt.Sprintf("SATCHEL %d¢", m.Amount)
	s.WriteString(titleStyle.Render(title))
	s.WriteString(" ")
	s.WriteString(countStyle.Render(fmt.Sprintf("%d found", m.Total())))
	s.WriteString("\n\n")

	start, end := m.window()
	for _, round := range m.Rounds[start:end] {
		s.WriteString(renderRoundRow(round) + "\n")
	}

	help := "q to stop"
	if !m.FollowMode {
		help += " " + style.Dot + " esc to follow"
	}
	s.WriteString(helpStyle.Render(help))

	return s.String()
}

// window returns the visible slice bounds of the round list.
func (m *Model) window() (int, int) {
	if m.ListHeight <= 0 {
		return 0, len(m.Rounds)
	}
	start := min(m.ListOffset, len(m.Rounds))
	end := min(start+m.ListHeight, len(m.Rounds))
	return start, end
}

func renderRoundRow(round *RoundNode) string {
	if round.Status == StatusRunning {
		return roundRunningStyle.Render(fmt.Sprintf("%s round %d", style.Dot, round.Number)) +
			countStyle.Render(fmt.Sprintf("  expanding %d", round.Frontier))
	}

	return roundDoneStyle.Render(fmt.Sprintf("%s round %d", style.Check, round.Number)) +
		countStyle.Render(fmt.Sprintf("  expanded %d %s %d new, %d found",
			round.Frontier, style.Arrow, round.Discovered, round.Total))
}
