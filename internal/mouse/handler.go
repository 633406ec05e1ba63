package mouse

import "time"

// LongPressDelay is how long the button must stay down to count as a long
// press.
const LongPressDelay = 500 * time.Millisecond

// Press describes a button press that has not been released yet.
type Press struct {
	Seq    int
	Region Region
	At     time.Time
	Long   bool // Set once the long press fired
}

// Handler tracks presses against a HitMap.
type Handler struct {
	HitMap *HitMap

	seq   int
	press *Press
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: &HitMap{}}
}

// Pressed returns the active press, or nil.
func (h *Handler) Pressed() *Press { return h.press }

// Press starts a press at (x, y). It returns the press sequence number and
// false when the point is outside every region.
func (h *Handler) Press(x, y int, at time.Time) (int, bool) {
	r := h.HitMap.Test(x, y)
	if r == nil {
		h.press = nil
		return 0, false
	}
	h.seq++
	h.press = &Press{Seq: h.seq, Region: *r, At: at}
	return h.seq, true
}

// LongPressDue marks press seq as long if it is still held. It reports
// whether the long press should fire now.
func (h *Handler) LongPressDue(seq int) bool {
	if h.press == nil || h.press.Seq != seq || h.press.Long {
		return false
	}
	h.press.Long = true
	return true
}

// Release ends the active press at (x, y). It returns the press and the
// region under the release point; either may be nil. A release outside every
// region cancels the press.
func (h *Handler) Release(x, y int) (*Press, *Region) {
	p := h.press
	h.press = nil
	if p == nil {
		return nil, nil
	}
	return p, h.HitMap.Test(x, y)
}

// Cancel drops the active press.
func (h *Handler) Cancel() {
	h.press = nil
}
