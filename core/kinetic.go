package core

// Kinetic is the floating state of one card
// X/Y is the top-left corner in play-area-local cells, VX/VY is cells per tick
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	// Anchored is false until the card has been placed at its slot anchor
	Anchored bool
}

// Position returns the top-left corner as a point
func (k *Kinetic) Position() Point {
	return Point{X: k.X, Y: k.Y}
}
