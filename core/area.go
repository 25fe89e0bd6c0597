package core

// Area represents a rectangular region in screen cells
// X/Y is the top-left corner; a zero or negative size marks an unmeasured area
type Area struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (a Area) Right() float64 { return a.X + a.Width }

// Bottom returns the y coordinate of the bottom edge
func (a Area) Bottom() float64 { return a.Y + a.Height }

// Empty reports whether the area has no measurable extent
func (a Area) Empty() bool { return a.Width <= 0 || a.Height <= 0 }

// Translate returns the area moved by (dx, dy)
func (a Area) Translate(dx, dy float64) Area {
	return Area{X: a.X + dx, Y: a.Y + dy, Width: a.Width, Height: a.Height}
}

// Point is a position in screen cells
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Edge identifies one side of an area
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the edge name
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
