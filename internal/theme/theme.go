// Package theme provides the colour palettes used for console output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used for report lines and prompts.
type Theme struct {
	Name      string
	TextFg    lipgloss.TerminalColor
	MutedFg   lipgloss.TerminalColor
	SuccessFg lipgloss.TerminalColor
	WarnFg    lipgloss.TerminalColor
	ErrorFg   lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
}

// Theme names.
const (
	DraculaName    = "dracula"
	CleanLightName = "clean-light"
	NoneName       = "none"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Name:      DraculaName,
		TextFg:    lipgloss.Color("#F8F8F2"),
		MutedFg:   lipgloss.Color("#6272A4"),
		SuccessFg: lipgloss.Color("#50FA7B"),
		WarnFg:    lipgloss.Color("#F1FA8C"),
		ErrorFg:   lipgloss.Color("#FF5555"),
		Accent:    lipgloss.Color("#BD93F9"),
	}
}

// CleanLight returns a theme for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Name:      CleanLightName,
		TextFg:    lipgloss.Color("#24292F"),
		MutedFg:   lipgloss.Color("#6E7781"),
		SuccessFg: lipgloss.Color("#1A7F37"),
		WarnFg:    lipgloss.Color("#9A6700"),
		ErrorFg:   lipgloss.Color("#CF222E"),
		Accent:    lipgloss.Color("#0598BC"),
	}
}

// None returns a theme that renders plain text.
func None() *Theme {
	return &Theme{
		Name:      NoneName,
		TextFg:    lipgloss.NoColor{},
		MutedFg:   lipgloss.NoColor{},
		SuccessFg: lipgloss.NoColor{},
		WarnFg:    lipgloss.NoColor{},
		ErrorFg:   lipgloss.NoColor{},
		Accent:    lipgloss.NoColor{},
	}
}

// GetTheme returns the theme by name, falling back to Dracula.
func GetTheme(name string) *Theme {
	switch name {
	case CleanLightName:
		return CleanLight()
	case NoneName:
		return None()
	default:
		return Dracula()
	}
}

// AvailableThemes lists the names accepted by GetTheme.
func AvailableThemes() []string {
	return []string{DraculaName, CleanLightName, NoneName}
}

// Text renders plain informational lines.
func (t *Theme) Text(text string) string {
	return lipgloss.NewStyle().Foreground(t.TextFg).Render(text)
}

// Warn renders text in the warning colour (listed items).
func (t *Theme) Warn(text string) string {
	return lipgloss.NewStyle().Foreground(t.WarnFg).Render(text)
}

// Error renders text in the error colour (destructive actions, svn output).
func (t *Theme) Error(text string) string {
	return lipgloss.NewStyle().Foreground(t.ErrorFg).Render(text)
}

// Success renders text in the success colour.
func (t *Theme) Success(text string) string {
	return lipgloss.NewStyle().Foreground(t.SuccessFg).Render(text)
}

// Muted renders secondary text such as progress lines.
func (t *Theme) Muted(text string) string {
	return lipgloss.NewStyle().Foreground(t.MutedFg).Render(text)
}
