// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlterm/internal/config"
)

var (
	textPrimary    lipgloss.Color
	textFaint      lipgloss.Color
	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color
	bgSecondary    lipgloss.Color

	// Styles
	StatusBarStyle    lipgloss.Style
	BrowsingModeStyle lipgloss.Style
	EditingModeStyle  lipgloss.Style
	ConnectionStyle   lipgloss.Style
	KeyHintStyle      lipgloss.Style
	DescStyle         lipgloss.Style
	TabActiveStyle    lipgloss.Style
	TabInactiveStyle  lipgloss.Style
	PaneStyle         lipgloss.Style
	PaneActiveStyle   lipgloss.Style
	PaneTitleStyle    lipgloss.Style
	CursorStyle       lipgloss.Style
	MetaStyle         lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	ErrorStyle        lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func WarningColor() lipgloss.Color   { return warningColor }
func BgSecondary() lipgloss.Color    { return bgSecondary }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textFaint = lipgloss.Color(theme.TextFaint)
	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)
	bgSecondary = lipgloss.Color(theme.BgSecondary)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	BrowsingModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(successColor).
		Foreground(bgSecondary)

	EditingModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(accentColor).
		Foreground(bgSecondary)

	ConnectionStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(textPrimary)

	KeyHintStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary).
		Padding(0, 1).
		Bold(true)

	DescStyle = lipgloss.NewStyle().Foreground(textFaint)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Padding(0, 1)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint)

	PaneActiveStyle = PaneStyle.
		BorderForeground(highlightColor)

	PaneTitleStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().Reverse(true)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(textFaint)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)
}
