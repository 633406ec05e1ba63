package mouse

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the clickable regions of the last render. Regions added later
// sit on top of earlier ones.
type HitMap struct {
	regions []Region
}

// AddRect registers a region. Empty rectangles are ignored.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	if w <= 0 || height <= 0 {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: height}, Data: data})
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Len returns the number of registered regions.
func (h *HitMap) Len() int { return len(h.regions) }

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}
