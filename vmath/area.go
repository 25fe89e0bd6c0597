package vmath

import (
	"math"

	"github.com/lixenwraith/culture-catch/core"
)

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// AreaContains checks if point is within area, edges inclusive
func AreaContains(a core.Area, x, y float64) bool {
	return x >= a.X && x <= a.Right() && y >= a.Y && y <= a.Bottom()
}

// AreaOverlaps reports whether two areas intersect on both axes
// Closed intervals: areas that only touch along an edge overlap
func AreaOverlaps(a, b core.Area) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// AreaAnchor returns the point at fractional offsets (fx, fy) of the area's size, area-local
func AreaAnchor(a core.Area, fx, fy float64) core.Point {
	return core.Point{X: a.Width * fx, Y: a.Height * fy}
}

// NearestEdge picks the edge a point left the area through
// Points outside are matched against left, right, top, bottom in that order
// Points inside use the smallest absolute distance, ties resolved in the same order
func NearestEdge(a core.Area, p core.Point) core.Edge {
	switch {
	case p.X < a.X:
		return core.EdgeLeft
	case p.X > a.Right():
		return core.EdgeRight
	case p.Y < a.Y:
		return core.EdgeTop
	case p.Y > a.Bottom():
		return core.EdgeBottom
	}

	dists := [4]float64{
		math.Abs(p.X - a.X),
		math.Abs(a.Right() - p.X),
		math.Abs(p.Y - a.Y),
		math.Abs(a.Bottom() - p.Y),
	}
	best := core.EdgeLeft
	for e := core.EdgeRight; e <= core.EdgeBottom; e++ {
		if dists[e] < dists[best] {
			best = e
		}
	}
	return best
}

// Clamp limits v to [lo, hi]; when hi < lo the lower bound wins
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates between a and b by t in [0, 1]
func Lerp(a, b core.Point, t float64) core.Point {
	t = Clamp(t, 0, 1)
	return core.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
