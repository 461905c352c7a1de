package ui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by both tools.
var (
	ColorPrimary   = lipgloss.Color("#9b59b6") // Purple
	ColorSecondary = lipgloss.Color("#27ae60") // Green
	ColorMuted     = lipgloss.Color("#95a5a6") // Gray
	ColorWarning   = lipgloss.Color("#f39c12") // Amber
	ColorError     = lipgloss.Color("#e74c3c") // Red

	ColorInfo    = lipgloss.Color("#3498db") // Blue
	ColorSuccess = lipgloss.Color("#2ecc71") // Bright green
)

// Text styles for consistent formatting.
var (
	// TitleStyle for banners and section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle for sub-step headings inside a flow.
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// SuccessStyle for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// SelectedStyle for the active item in menus and step trackers.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// UnselectedStyle for inactive items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HelpStyle for hints and examples shown before a prompt.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// IDStyle for template ids and preset keys.
	IDStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// CategoryStyle for template categories.
	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// CustomTagStyle marks user-defined templates in listings.
	CustomTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e056fd"))

	// CountStyle for totals in listing footers.
	CountStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Box styles for layout.
var (
	// BoxStyle frames document previews.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// BannerStyle frames the tool banner.
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 4)
)
