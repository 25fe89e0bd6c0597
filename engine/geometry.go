package engine

import "github.com/lixenwraith/culture-catch/core"

// GeometryProvider supplies the current play area and drop zone in screen cells
// ok=false means the rectangle cannot be measured yet
type GeometryProvider interface {
	PlayArea() (core.Area, bool)
	DropZone() (core.Area, bool)
}

// Geometry is the per-tick snapshot of provider output
type Geometry struct {
	Play    core.Area
	Zone    core.Area
	HasPlay bool
	HasZone bool
}

// Ready reports whether both rectangles are measurable
func (g Geometry) Ready() bool {
	return g.HasPlay && g.HasZone && !g.Play.Empty() && !g.Zone.Empty()
}

// SampleGeometry reads both rectangles once; nil provider yields an unavailable snapshot
func SampleGeometry(p GeometryProvider) Geometry {
	if p == nil {
		return Geometry{}
	}
	var g Geometry
	g.Play, g.HasPlay = p.PlayArea()
	g.Zone, g.HasZone = p.DropZone()
	return g
}

// StaticGeometry is a fixed layout, a pure function of configuration
// Used by the headless simulator and tests
type StaticGeometry struct {
	Play core.Area
	Zone core.Area
}

// NewStaticGeometry lays out a play field of width x height cells with the zone as a band along the bottom
// The zone spans the middle third horizontally and zoneHeight rows
func NewStaticGeometry(width, height, zoneHeight int) *StaticGeometry {
	w, h, zh := float64(width), float64(height), float64(zoneHeight)
	if zh > h {
		zh = h
	}
	return &StaticGeometry{
		Play: core.Area{X: 0, Y: 0, Width: w, Height: h - zh},
		Zone: core.Area{X: w / 3, Y: h - zh, Width: w / 3, Height: zh},
	}
}

func (g *StaticGeometry) PlayArea() (core.Area, bool) { return g.Play, !g.Play.Empty() }

func (g *StaticGeometry) DropZone() (core.Area, bool) { return g.Zone, !g.Zone.Empty() }
