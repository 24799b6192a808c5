package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette mirrors the GUI theme
const (
	colorPrimary     = lipgloss.Color("#6200EE")
	colorCard        = lipgloss.Color("#EDE7F6")
	colorCardText    = lipgloss.Color("#212121")
	colorError       = lipgloss.Color("#E53935")
	colorErrorBg     = lipgloss.Color("#FFCDD2")
	colorFavorite    = lipgloss.Color("#F44336")
	colorNotFavorite = lipgloss.Color("#9E9E9E")
	colorMuted       = lipgloss.Color("240")
)

// Styles groups every lipgloss style used by the view
type Styles struct {
	Title       lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	InputError  lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	Counter     lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Favorite    lipgloss.Style
	NotFavorite lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the app styles
func DefaultStyles() Styles {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)

	row := lipgloss.NewStyle().
		Background(colorCard).
		Foreground(colorCardText).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Input:      input,
		InputFocus: input.BorderForeground(colorPrimary),
		InputError: input.BorderForeground(colorError).Background(colorErrorBg),
		Placeholder: lipgloss.NewStyle().
			Foreground(colorMuted),
		Error: lipgloss.NewStyle().
			Foreground(colorError),
		Counter: lipgloss.NewStyle().
			Bold(true),
		Row: row,
		RowSelected: row.
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colorPrimary),
		Favorite: lipgloss.NewStyle().
			Foreground(colorFavorite),
		NotFavorite: lipgloss.NewStyle().
			Foreground(colorNotFavorite),
		Empty: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}
