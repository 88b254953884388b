package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/satchel/internal/ui/style"
)

var (
	roundRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	roundDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	countStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
