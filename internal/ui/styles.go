package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, valid candidates
	ColorHighlight = "205" // Magenta - for the cursor, borders
	ColorDanger    = "196" // Red - for conflicting cells
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across the board and modals.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for the header line
	Hint  lipgloss.Style // Help/hint text (muted color)

	StatusOK  lipgloss.Style // drag status line, candidate committable
	StatusBad lipgloss.Style // drag status line, candidate in conflict

	// Per-cell board styles keyed by adorner status
	CellNeutral   lipgloss.Style // adorner 0
	CellHighlight lipgloss.Style // adorner 1 (candidate cells)
	CellInvalid   lipgloss.Style // adorner -1 (conflicting cells)
	CellCursor    lipgloss.Style // cursor position, overrides the adorner border

	// Modal styles
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalError lipgloss.Style
	ModalHelp  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	StatusOK: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	StatusBad: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	CellNeutral: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorText)),
	CellHighlight: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	CellInvalid: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	CellCursor: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	ModalBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ModalError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	ModalHelp: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
