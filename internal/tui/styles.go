package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Status colors
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Review     lipgloss.Color
	Completed  lipgloss.Color

	// Priority colors
	Low      lipgloss.Color
	Medium   lipgloss.Color
	High     lipgloss.Color
	Critical lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Review:     lipgloss.Color("#A29BFE"), // Lavender
	Completed:  lipgloss.Color("#00B894"), // Green

	Low:      lipgloss.Color("#636E72"), // Gray
	Medium:   lipgloss.Color("#74B9FF"), // Light blue
	High:     lipgloss.Color("#FDCB6E"), // Yellow
	Critical: lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Overdue  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:      lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Colors.Muted),
		Label:    lipgloss.NewStyle().Foreground(Colors.Muted).Width(12),
		Value:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Colors.Warning),
		Muted:    lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		Overdue:  lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// StatusStyle returns the style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return lipgloss.NewStyle().Foreground(Colors.Pending)
	case domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(Colors.InProgress)
	case domain.StatusReview:
		return lipgloss.NewStyle().Foreground(Colors.Review)
	case domain.StatusCompleted:
		return lipgloss.NewStyle().Foreground(Colors.Completed)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Muted)
	}
}

// PriorityStyle returns the style for a task priority.
func (s Styles) PriorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityLow:
		return lipgloss.NewStyle().Foreground(Colors.Low)
	case domain.PriorityMedium:
		return lipgloss.NewStyle().Foreground(Colors.Medium)
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(Colors.High)
	case domain.PriorityCritical:
		return lipgloss.NewStyle().Foreground(Colors.Critical)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Muted)
	}
}
