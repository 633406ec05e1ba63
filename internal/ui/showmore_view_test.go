package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/showmore/internal/showmore"
)

const sampleText = "Hello world, this is a test."

type countingObserver struct {
	clicks, longClicks int
}

func (o *countingObserver) OnClicked()     { o.clicks++ }
func (o *countingObserver) OnLongClicked() { o.longClicks++ }

func newTestView(width int) (*ShowMoreView, *countingObserver) {
	cfg := showmore.DefaultConfig()
	cfg.MaxLength = 10
	cfg.MoreLabel = "More"
	cfg.LessLabel = "Less"
	c := showmore.New(cfg)
	obs := &countingObserver{}
	c.SetObserver(obs)
	c.SetContentText(sampleText)
	return NewShowMoreView(c, width), obs
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestShowMoreView_RenderCollapsed(t *testing.T) {
	v, _ := newTestView(80)

	out := ansi.Strip(v.Render())
	if out != "Hello worl... More" {
		t.Errorf("expected collapsed text, got %q", out)
	}
	if v.Height() != 1 {
		t.Errorf("expected height 1, got %d", v.Height())
	}

	r := v.HitMap().Test(15, 0)
	if r == nil || r.ID != RegionAffix {
		t.Fatalf("expected affix region at column 15, got %v", r)
	}
	if r.Rect.X != 14 || r.Rect.W != 4 {
		t.Errorf("expected affix rect at 14 width 4, got %+v", r.Rect)
	}
	if r := v.HitMap().Test(13, 0); r == nil || r.ID != RegionText {
		t.Errorf("expected text region at column 13, got %v", r)
	}
	if r := v.HitMap().Test(18, 0); r != nil {
		t.Errorf("expected nothing past the text, got %v", r)
	}
}

func TestShowMoreView_RenderWrapsAffix(t *testing.T) {
	v, _ := newTestView(16)
	v.SetOrigin(2, 3)

	out := ansi.Strip(v.Render())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[0] != "Hello worl... Mo" || lines[1] != "re" {
		t.Fatalf("unexpected wrapped output %q", out)
	}

	// First line: affix starts at column 14 of the widget.
	if r := v.HitMap().Test(2+14, 3); r == nil || r.ID != RegionAffix {
		t.Errorf("expected affix on first line, got %v", r)
	}
	// Second line is entirely affix.
	if r := v.HitMap().Test(2, 4); r == nil || r.ID != RegionAffix {
		t.Errorf("expected affix on second line, got %v", r)
	}
	if r := v.HitMap().Test(0, 3); r != nil {
		t.Errorf("expected nothing left of the origin, got %v", r)
	}
}

func TestShowMoreView_RenderShortText(t *testing.T) {
	c := showmore.New(showmore.DefaultConfig())
	c.SetContentText("short")
	v := NewShowMoreView(c, 80)

	if out := ansi.Strip(v.Render()); out != "short" {
		t.Errorf("expected 'short', got %q", out)
	}
	if r := v.HitMap().Test(4, 0); r == nil || r.ID != RegionText {
		t.Errorf("expected text region, got %v", r)
	}
	if v.HitMap().Len() != 1 {
		t.Errorf("expected only the text region, got %d", v.HitMap().Len())
	}
}

func TestShowMoreView_RenderCache(t *testing.T) {
	v, _ := newTestView(80)
	first := v.Render()
	if v.Render() != first {
		t.Error("expected cached output to be stable")
	}

	v.Controller.Toggle()
	if got := ansi.Strip(v.Render()); got != sampleText+" Less" {
		t.Errorf("expected expanded text after toggle, got %q", got)
	}

	v.Invalidate()
	if got := ansi.Strip(v.Render()); got != sampleText+" Less" {
		t.Errorf("expected same output after invalidate, got %q", got)
	}
}

func TestShowMoreView_TabAlignsAffix(t *testing.T) {
	cfg := showmore.DefaultConfig()
	cfg.MaxLength = 5
	cfg.MoreLabel = "More"
	c := showmore.New(cfg)
	c.SetContentText("\tabcdefghij")
	v := NewShowMoreView(c, 80)

	out := ansi.Strip(v.Render())
	if out != "    abcd... More" {
		t.Fatalf("expected tab drawn as four spaces, got %q", out)
	}

	r := v.HitMap().Test(12, 0)
	if r == nil || r.ID != RegionAffix {
		t.Fatalf("expected affix region at drawn column 12, got %v", r)
	}
	if r.Rect.W != 4 {
		t.Errorf("expected affix width 4, got %d", r.Rect.W)
	}
	if r := v.HitMap().Test(11, 0); r == nil || r.ID != RegionText {
		t.Errorf("expected text region at column 11, got %v", r)
	}

	v.HandleMouse(press(13, 0))
	v.HandleMouse(release(13, 0))
	if !c.IsExpanded() {
		t.Error("expected tap on the drawn affix to expand")
	}
}

func TestShowMoreView_TapAffix(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	if cmd := v.HandleMouse(press(15, 0)); cmd == nil {
		t.Error("expected long press timer from press")
	}
	v.HandleMouse(release(15, 0))

	if !v.Controller.IsExpanded() {
		t.Error("expected tap on affix to expand")
	}
	if obs.clicks != 0 {
		t.Errorf("expected no OnClicked, got %d", obs.clicks)
	}
	if v.Controller.State() != showmore.Idle {
		t.Errorf("expected idle state, got %s", v.Controller.State())
	}
}

func TestShowMoreView_TapText(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	v.HandleMouse(press(2, 0))
	v.HandleMouse(release(2, 0))

	if v.Controller.IsExpanded() {
		t.Error("tap outside the affix must not toggle")
	}
	if obs.clicks != 1 {
		t.Errorf("expected 1 OnClicked, got %d", obs.clicks)
	}
}

func TestShowMoreView_TapOutside(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	if cmd := v.HandleMouse(press(50, 5)); cmd != nil {
		t.Error("press outside the view must not schedule a long press")
	}
	v.HandleMouse(release(50, 5))

	// Press inside, release outside cancels.
	v.HandleMouse(press(2, 0))
	v.HandleMouse(release(50, 5))

	if obs.clicks != 0 {
		t.Errorf("expected no clicks, got %d", obs.clicks)
	}
}

func TestShowMoreView_RightButtonIgnored(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	msg := press(15, 0)
	msg.Button = tea.MouseButtonRight
	if cmd := v.HandleMouse(msg); cmd != nil {
		t.Error("right button must not start a press")
	}
	v.HandleMouse(release(15, 0))
	if v.Controller.IsExpanded() || obs.clicks != 0 {
		t.Error("right button must not click")
	}
}

func TestShowMoreView_LongPressOnAffix(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	v.HandleMouse(press(15, 0))
	seq := v.mouse.Pressed().Seq
	if !v.HandleLongPress(LongPressMsg{Seq: seq}) {
		t.Fatal("expected long press to fire while held")
	}
	if obs.longClicks != 1 {
		t.Errorf("expected 1 OnLongClicked, got %d", obs.longClicks)
	}
	v.HandleMouse(release(15, 0))

	if v.Controller.IsExpanded() {
		t.Error("release after long press must not toggle")
	}
}

func TestShowMoreView_StaleLongPress(t *testing.T) {
	v, obs := newTestView(80)
	v.Render()

	v.HandleMouse(press(15, 0))
	seq := v.mouse.Pressed().Seq
	v.HandleMouse(release(15, 0))

	if v.HandleLongPress(LongPressMsg{Seq: seq}) {
		t.Error("long press must not fire after release")
	}
	if obs.longClicks != 0 {
		t.Errorf("expected no long clicks, got %d", obs.longClicks)
	}
}

func TestShowMoreView_HandleKey(t *testing.T) {
	tests := []struct {
		name         string
		msg          tea.KeyMsg
		wantAction   string
		wantHandled  bool
		wantExpanded bool
	}{
		{"enter toggles", tea.KeyMsg{Type: tea.KeyEnter}, ActionToggle, true, true},
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionToggle, true, true},
		{"e expands", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, ActionExpand, true, true},
		{"c collapses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, ActionCollapse, true, false},
		{"x unhandled", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestView(80)
			action, handled := v.HandleKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("expected action %q, got %q", tt.wantAction, action)
			}
			if handled != tt.wantHandled {
				t.Errorf("expected handled %v, got %v", tt.wantHandled, handled)
			}
			if v.Controller.IsExpanded() != tt.wantExpanded {
				t.Errorf("expected expanded %v, got %v", tt.wantExpanded, v.Controller.IsExpanded())
			}
		})
	}
}
