package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/marcus/showmore/internal/showmore"
)

// Palette
var (
	Primary     = lipgloss.Color("#7C3AED")
	TextPrimary = lipgloss.Color("#F9FAFB")
	TextMuted   = lipgloss.Color("#9CA3AF")
	Success     = lipgloss.Color("#10B981")
	Warning     = lipgloss.Color("#F59E0B")
)

var (
	Body    = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted   = lipgloss.NewStyle().Foreground(TextMuted)
	KeyHint = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Title   = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	StatusInfo = lipgloss.NewStyle().Foreground(Success)
	StatusWarn = lipgloss.NewStyle().Foreground(Warning)
)

// Hex converts an ARGB colour to "#rrggbb". Terminals have no alpha channel,
// so alpha is dropped.
func Hex(c showmore.Color) string {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}.Hex()
}

// Affix returns the lipgloss style for a variant's clickable affix. There is
// no terminal equivalent for RelativeSize, so it is not applied.
func Affix(s showmore.AffixStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(Hex(s.Color))).
		Underline(s.Underline).
		Bold(s.Bold)
}
