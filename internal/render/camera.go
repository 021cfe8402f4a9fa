package render

// Camera translates between grid coordinates and screen coordinates.
// Grid X is multiplied by 2 because emoji glyphs occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on grid position (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that grid position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each grid cell is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Pan shifts the camera by (dx, dy) grid cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// GridToScreen converts grid (gx, gy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) GridToScreen(gx, gy int) (sx, sy int, visible bool) {
	sx = (gx - c.OffsetX) * 2
	sy = gy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
