package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/showmore/internal/showmore"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   showmore.Color
		want string
	}{
		{0xFF999999, "#999999"},
		{0x80336699, "#336699"},
		{0xFF000000, "#000000"},
		{0xFFFFFFFF, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAffix(t *testing.T) {
	st := Affix(showmore.AffixStyle{Color: 0xFF336699, RelativeSize: 0.9})

	if st.GetUnderline() {
		t.Error("affix style must not underline")
	}
	if st.GetBold() {
		t.Error("affix style must not be bold")
	}
	if fg := st.GetForeground(); fg != lipgloss.TerminalColor(lipgloss.Color("#336699")) {
		t.Errorf("expected foreground #336699, got %v", fg)
	}
}
