package grid

// Pen paints terrain onto a Floor with a mutable brush value. Scenario
// setup code draws the level through a Pen before the first turn; a zero
// brush erases. Every primitive silently rejects out-of-bounds endpoints.
type Pen struct {
	floor *Floor
	brush int
}

// NewPen returns a Pen over floor with the default wall brush.
func NewPen(floor *Floor) *Pen {
	return &Pen{floor: floor, brush: Wall}
}

// SetBrush changes the terrain code painted by subsequent calls.
func (p *Pen) SetBrush(code int) { p.brush = code }

// Point paints a single tile.
func (p *Pen) Point(x, y int) {
	if !p.floor.InBounds(x, y) {
		return
	}
	p.floor.setTerrain(x, y, p.brush)
}

// Column paints a vertical run at x between y1 and y2 inclusive,
// in either order.
func (p *Pen) Column(x, y1, y2 int) {
	if !p.floor.InBounds(x, y1) || !p.floor.InBounds(x, y2) {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		p.floor.setTerrain(x, y, p.brush)
	}
}

// Row paints a horizontal run at y between x1 and x2 inclusive,
// in either order.
func (p *Pen) Row(y, x1, x2 int) {
	if !p.floor.InBounds(x1, y) || !p.floor.InBounds(x2, y) {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		p.floor.setTerrain(x, y, p.brush)
	}
}

// Area fills the rectangle with opposite corners (x1, y1) and (x2, y2).
func (p *Pen) Area(x1, y1, x2, y2 int) {
	if !p.floor.InBounds(x1, y1) || !p.floor.InBounds(x2, y2) {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			p.floor.setTerrain(x, y, p.brush)
		}
	}
}

// Outline paints the four edges of the rectangle with opposite corners
// (x1, y1) and (x2, y2), leaving the interior untouched.
func (p *Pen) Outline(x1, y1, x2, y2 int) {
	if !p.floor.InBounds(x1, y1) || !p.floor.InBounds(x2, y2) {
		return
	}
	p.Column(x1, y1, y2)
	p.Column(x2, y1, y2)
	p.Row(y1, x1, x2)
	p.Row(y2, x1, x2)
}

// Border paints the outermost ring of the floor, fencing entities in.
func (p *Pen) Border() {
	p.Outline(-p.floor.XRad, -p.floor.YRad, p.floor.XRad, p.floor.YRad)
}

// Erase clears a single tile to open terrain.
func (p *Pen) Erase(x, y int) {
	saved := p.brush
	p.brush = 0
	p.Point(x, y)
	p.brush = saved
}

// EraseColumn clears a vertical run.
func (p *Pen) EraseColumn(x, y1, y2 int) {
	saved := p.brush
	p.brush = 0
	p.Column(x, y1, y2)
	p.brush = saved
}

// EraseRow clears a horizontal run.
func (p *Pen) EraseRow(y, x1, x2 int) {
	saved := p.brush
	p.brush = 0
	p.Row(y, x1, x2)
	p.brush = saved
}

// EraseArea clears a filled rectangle.
func (p *Pen) EraseArea(x1, y1, x2, y2 int) {
	saved := p.brush
	p.brush = 0
	p.Area(x1, y1, x2, y2)
	p.brush = saved
}
