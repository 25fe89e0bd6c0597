package physics

import (
	"github.com/lixenwraith/culture-catch/core"
)

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(k *core.Kinetic) {
	k.X += k.VX
	k.Y += k.VY
}

// SetImpulse overrides velocity
func SetImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}

// ReflectBoundsX keeps a box of width boxW inside [0, width], returns true if reflection occurred
// Velocity is inverted only when it points out of the area, so a box pushed in by a resize does not jitter
func ReflectBoundsX(k *core.Kinetic, width, boxW float64) bool {
	maxX := width - boxW
	if maxX < 0 {
		maxX = 0
	}
	if k.X < 0 {
		k.X = 0
		if k.VX < 0 {
			k.VX = -k.VX
			return true
		}
		return false
	}
	if k.X > maxX {
		k.X = maxX
		if k.VX > 0 {
			k.VX = -k.VX
			return true
		}
	}
	return false
}

// ReflectBoundsY keeps a box of height boxH inside [0, height], returns true if reflection occurred
func ReflectBoundsY(k *core.Kinetic, height, boxH float64) bool {
	maxY := height - boxH
	if maxY < 0 {
		maxY = 0
	}
	if k.Y < 0 {
		k.Y = 0
		if k.VY < 0 {
			k.VY = -k.VY
			return true
		}
		return false
	}
	if k.Y > maxY {
		k.Y = maxY
		if k.VY > 0 {
			k.VY = -k.VY
			return true
		}
	}
	return false
}

// Step integrates one tick and reflects against the area bounds
// No energy is lost: reflection only flips the sign of a velocity component
func Step(k *core.Kinetic, width, height, boxW, boxH float64) (rx, ry bool) {
	Integrate(k)
	rx = ReflectBoundsX(k, width, boxW)
	ry = ReflectBoundsY(k, height, boxH)
	return rx, ry
}

// SetPosition places the box at (x, y) in area-local cells
func SetPosition(k *core.Kinetic, x, y float64) {
	k.X = x
	k.Y = y
}
