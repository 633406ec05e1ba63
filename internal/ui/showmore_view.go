package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/showmore/internal/logger"
	"github.com/marcus/showmore/internal/mouse"
	"github.com/marcus/showmore/internal/showmore"
	"github.com/marcus/showmore/internal/styles"
)

// Hit-region IDs registered by ShowMoreView.
const (
	RegionText  = "showmore-text"
	RegionAffix = "showmore-affix"
)

// Actions returned by HandleKey.
const (
	ActionToggle   = "toggle"
	ActionExpand   = "expand"
	ActionCollapse = "collapse"
)

// LongPressMsg fires LongPressDelay after a press inside the view.
type LongPressMsg struct {
	Seq int
}

// ViewKeyMap holds the keys the view handles itself.
type ViewKeyMap struct {
	Toggle   key.Binding
	Expand   key.Binding
	Collapse key.Binding
}

// DefaultViewKeyMap returns the default view bindings.
func DefaultViewKeyMap() ViewKeyMap {
	return ViewKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse"),
		),
	}
}

// ShowMoreView draws a showmore.Controller into a terminal region and turns
// mouse and key input into controller events.
type ShowMoreView struct {
	Controller *showmore.Controller
	Keys       ViewKeyMap
	Width      int // Wrap width in cells; <= 0 disables wrapping

	x, y  int // Screen origin used for hit regions
	mouse *mouse.Handler

	cacheKey uint64
	cached   string
	height   int
}

// NewShowMoreView creates a view for c wrapping at width cells.
func NewShowMoreView(c *showmore.Controller, width int) *ShowMoreView {
	return &ShowMoreView{
		Controller: c,
		Keys:       DefaultViewKeyMap(),
		Width:      width,
		mouse:      mouse.NewHandler(),
	}
}

// SetOrigin sets the screen cell where the first rendered line starts.
func (v *ShowMoreView) SetOrigin(x, y int) {
	v.x, v.y = x, y
}

// Height returns the number of lines produced by the last Render.
func (v *ShowMoreView) Height() int { return v.height }

// HitMap exposes the regions registered by the last Render.
func (v *ShowMoreView) HitMap() *mouse.HitMap { return v.mouse.HitMap }

// renderKey fingerprints everything the rendered output depends on.
func (v *ShowMoreView) renderKey(cur showmore.Variant) uint64 {
	d := xxhash.New()
	d.WriteString(cur.Text)
	d.WriteString("\x00")
	d.WriteString(strconv.Itoa(cur.Affix.Start))
	d.WriteString(",")
	d.WriteString(strconv.FormatUint(uint64(cur.Style.Color), 16))
	d.WriteString(",")
	d.WriteString(strconv.Itoa(v.Width))
	d.WriteString(",")
	d.WriteString(strconv.Itoa(v.x))
	d.WriteString(",")
	d.WriteString(strconv.Itoa(v.y))
	return d.Sum64()
}

// Render returns the current variant, wrapped and styled, and registers the
// hit regions for it. Output is cached until the variant, width or origin
// changes.
func (v *ShowMoreView) Render() string {
	cur := v.Controller.Current()
	k := v.renderKey(cur)
	if k == v.cacheKey && v.cached != "" {
		return v.cached
	}

	v.mouse.HitMap.Clear()
	lines := WrapRunes(cur.Text, v.Width)
	affix := styles.Affix(cur.Style)

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		row := v.y + i
		v.mouse.HitMap.AddRect(RegionText, v.x, row, line.Width(), 1, line.Start)

		// Split the line at the affix boundary.
		split := len(line.Runes)
		if cur.Clickable && cur.Affix.Start < line.End() {
			split = max(cur.Affix.Start-line.Start, 0)
		}
		body, tail := line.Runes[:split], line.Runes[split:]

		if len(body) > 0 {
			sb.WriteString(styles.Body.Render(drawn(body)))
		}
		if len(tail) > 0 {
			sb.WriteString(affix.Render(drawn(tail)))
			v.mouse.HitMap.AddRect(RegionAffix, v.x+cellWidth(body), row, cellWidth(tail), 1, line.Start+split)
		}
	}

	v.cacheKey = k
	v.cached = sb.String()
	v.height = len(lines)
	return v.cached
}

// Invalidate drops the render cache.
func (v *ShowMoreView) Invalidate() {
	v.cacheKey = 0
	v.cached = ""
}

// HandleKey processes keyboard input. Returns:
// - action: ActionToggle, ActionExpand, ActionCollapse or "" (no action)
// - handled: whether the key was consumed
func (v *ShowMoreView) HandleKey(msg tea.KeyMsg) (action string, handled bool) {
	switch {
	case key.Matches(msg, v.Keys.Toggle):
		v.Controller.Toggle()
		return ActionToggle, true
	case key.Matches(msg, v.Keys.Expand):
		v.Controller.ExpandText(true)
		return ActionExpand, true
	case key.Matches(msg, v.Keys.Collapse):
		v.Controller.ExpandText(false)
		return ActionCollapse, true
	}
	return "", false
}

// HandleMouse feeds a mouse event to the view. A press inside the view
// schedules a LongPressMsg; the release delivers the affix and region clicks
// the way a toolkit reports a tap.
func (v *ShowMoreView) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		seq, ok := v.mouse.Press(msg.X, msg.Y, time.Now())
		if !ok {
			return nil
		}
		return tea.Tick(mouse.LongPressDelay, func(time.Time) tea.Msg {
			return LongPressMsg{Seq: seq}
		})

	case tea.MouseActionRelease:
		press, region := v.mouse.Release(msg.X, msg.Y)
		if press == nil {
			return nil
		}
		if region == nil {
			logger.Debug("tap cancelled outside view", "x", msg.X, "y", msg.Y)
			return nil
		}
		if region.ID == RegionAffix {
			toggled := v.Controller.AffixClicked()
			logger.Debug("affix clicked", "toggled", toggled, "expanded", v.Controller.IsExpanded())
		}
		v.Controller.RegionClicked()
	}
	return nil
}

// HandleLongPress fires the controller's long press if the press that
// scheduled msg is still held. It reports whether it fired.
func (v *ShowMoreView) HandleLongPress(msg LongPressMsg) bool {
	if !v.mouse.LongPressDue(msg.Seq) {
		return false
	}
	v.Controller.LongPress()
	return true
}
