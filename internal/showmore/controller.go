// Package showmore holds the toolkit-independent state of a text widget that
// truncates long content behind a clickable "show more" affix and toggles
// between the collapsed and expanded renderings.
package showmore

// Controller owns the content, the two derived variants, the expand state and
// the click disambiguation state. It is not safe for concurrent use; hosts
// drive it from their event loop.
type Controller struct {
	cfg        Config
	original   string
	hasContent bool

	collapsed Variant
	expanded  Variant

	isExpanded bool
	state      InteractionState
	observer   Observer
}

// New creates a controller with cfg (normalized) and empty content. The
// initial expand state comes from cfg.Expanded. Start from DefaultConfig to
// get the default threshold.
func New(cfg Config) *Controller {
	c := &Controller{}
	c.SetConfiguration(cfg)
	c.isExpanded = c.cfg.Expanded
	c.SetContentText("")
	return c
}

// SetObserver registers the click observer. A nil observer is allowed.
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// SetConfiguration stores cfg and recomputes the variants when content is
// already present. The live expand state is kept; cfg.Expanded only seeds
// New. Use ExpandText to change it.
func (c *Controller) SetConfiguration(cfg Config) {
	c.cfg = cfg.Normalized()
	if c.hasContent {
		c.collapsed, c.expanded = buildVariants(c.original, c.cfg)
	}
}

// SetContentText replaces the content and recomputes both variants. The
// current expand state is preserved.
func (c *Controller) SetContentText(text string) {
	c.original = text
	c.hasContent = true
	c.collapsed, c.expanded = buildVariants(text, c.cfg)
}

// Toggle flips between the collapsed and expanded variants.
func (c *Controller) Toggle() {
	c.isExpanded = !c.isExpanded
}

// ExpandText sets the expand state directly. Unlike Toggle it is safe to
// call repeatedly, e.g. when restoring saved state.
func (c *Controller) ExpandText(expand bool) {
	c.isExpanded = expand
}

// IsExpanded reports whether the expanded variant is rendered.
func (c *Controller) IsExpanded() bool { return c.isExpanded }

// OriginalText returns the content as last set.
func (c *Controller) OriginalText() string { return c.original }

// Config returns the normalized configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns the click disambiguation state.
func (c *Controller) State() InteractionState { return c.state }

// Collapsed returns the collapsed variant.
func (c *Controller) Collapsed() Variant { return c.collapsed }

// Expanded returns the expanded variant.
func (c *Controller) Expanded() Variant { return c.expanded }

// Current returns the variant selected by the expand state.
func (c *Controller) Current() Variant {
	if c.isExpanded {
		return c.expanded
	}
	return c.collapsed
}

// InAffix reports whether rune index pos of the current variant is inside
// the clickable affix.
func (c *Controller) InAffix(pos int) bool {
	v := c.Current()
	return v.Clickable && v.Affix.Contains(pos)
}

// AffixClicked handles a tap that landed on the affix. It returns true if the
// tap toggled the widget. A tap that ends a long press is swallowed.
func (c *Controller) AffixClicked() bool {
	if c.state == LongPressed {
		c.state = Idle
		return false
	}
	c.Toggle()
	c.state = AffixConsumed
	return true
}

// RegionClicked handles the generic tap notification delivered for every tap
// on the widget, after AffixClicked when the tap hit the affix. It returns
// true if the observer was notified.
func (c *Controller) RegionClicked() bool {
	if c.state == AffixConsumed {
		c.state = Idle
		return false
	}
	c.state = Idle
	if c.observer != nil {
		c.observer.OnClicked()
	}
	return true
}

// LongPress handles a long press anywhere on the widget. The affix tap that
// follows on release will not toggle.
func (c *Controller) LongPress() {
	c.state = LongPressed
	if c.observer != nil {
		c.observer.OnLongClicked()
	}
}

// Tap delivers both notifications for a tap at rune index pos of the current
// variant, in the order a toolkit would.
func (c *Controller) Tap(pos int) {
	if c.InAffix(pos) {
		c.AffixClicked()
	}
	c.RegionClicked()
}
