package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across views.
var (
	ColorHeader    = lipgloss.Color("39")  // blue
	ColorHighlight = lipgloss.Color("205") // pink
	ColorValue     = lipgloss.Color("252") // near-white
	ColorLabel     = lipgloss.Color("245") // gray
	ColorMuted     = lipgloss.Color("241") // dark gray
	ColorError     = lipgloss.Color("196") // red
)

// Shared styles.
var (
	// InfoStyle renders informational banners.
	InfoStyle = lipgloss.NewStyle().Foreground(ColorHeader)

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	// TitleStyle renders the browse view title bar.
	TitleStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	// StatusStyle renders the item/page status line.
	StatusStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	// HelpStyle renders the key help line.
	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// CurrentPageStyle highlights the current page in a page bar.
	CurrentPageStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	// PageStyle renders non-current page numbers in a page bar.
	PageStyle = lipgloss.NewStyle().Foreground(ColorValue)

	// GapStyle renders elision markers in a page bar.
	GapStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// TableHeaderStyle styles the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)

	// TableSelectedStyle styles the selected table row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
