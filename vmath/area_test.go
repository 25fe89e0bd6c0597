package vmath

import (
	"testing"

	"github.com/lixenwraith/culture-catch/core"
)

func TestAreaOverlaps(t *testing.T) {
	zone := core.Area{X: 10, Y: 10, Width: 10, Height: 5}

	tests := []struct {
		name string
		item core.Area
		want bool
	}{
		{"fully inside", core.Area{X: 12, Y: 11, Width: 2, Height: 2}, true},
		{"partial overlap", core.Area{X: 5, Y: 8, Width: 8, Height: 4}, true},
		{"touching left edge", core.Area{X: 0, Y: 10, Width: 10, Height: 3}, true},
		{"touching bottom edge", core.Area{X: 12, Y: 15, Width: 3, Height: 3}, true},
		{"touching corner", core.Area{X: 20, Y: 15, Width: 2, Height: 2}, true},
		{"left of zone", core.Area{X: 0, Y: 10, Width: 9.5, Height: 3}, false},
		{"above zone", core.Area{X: 12, Y: 0, Width: 3, Height: 9.9}, false},
		{"right of zone", core.Area{X: 20.1, Y: 12, Width: 3, Height: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreaOverlaps(tt.item, zone); got != tt.want {
				t.Errorf("AreaOverlaps(%+v, zone) = %v, want %v", tt.item, got, tt.want)
			}
			// Symmetric
			if got := AreaOverlaps(zone, tt.item); got != tt.want {
				t.Errorf("AreaOverlaps(zone, %+v) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

func TestAreaContainsInclusive(t *testing.T) {
	a := core.Area{X: 0, Y: 0, Width: 4, Height: 4}
	if !AreaContains(a, 4, 4) {
		t.Error("bottom-right corner should be contained")
	}
	if AreaContains(a, 4.01, 2) {
		t.Error("point past right edge should not be contained")
	}
}

func TestNearestEdge(t *testing.T) {
	area := core.Area{X: 10, Y: 5, Width: 40, Height: 20}

	tests := []struct {
		name string
		p    core.Point
		want core.Edge
	}{
		{"outside left", core.Point{X: 2, Y: 12}, core.EdgeLeft},
		{"outside right", core.Point{X: 60, Y: 12}, core.EdgeRight},
		{"outside top", core.Point{X: 30, Y: 1}, core.EdgeTop},
		{"outside bottom", core.Point{X: 30, Y: 40}, core.EdgeBottom},
		{"outside left and below resolves left", core.Point{X: 0, Y: 40}, core.EdgeLeft},
		{"inside near left", core.Point{X: 11, Y: 15}, core.EdgeLeft},
		{"inside near right", core.Point{X: 48, Y: 15}, core.EdgeRight},
		{"inside near top", core.Point{X: 30, Y: 6}, core.EdgeTop},
		{"inside near bottom", core.Point{X: 30, Y: 24}, core.EdgeBottom},
		{"inside tie left/top", core.Point{X: 12, Y: 7}, core.EdgeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestEdge(area, tt.p); got != tt.want {
				t.Errorf("NearestEdge(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1,0,3) = %v, want 0", got)
	}
	// Degenerate range keeps the lower bound
	if got := Clamp(2, 4, 1); got != 4 {
		t.Errorf("Clamp(2,4,1) = %v, want 4", got)
	}

	mid := Lerp(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: -4}, 0.5)
	if mid.X != 5 || mid.Y != -2 {
		t.Errorf("Lerp midpoint = %+v, want {5 -2}", mid)
	}
	end := Lerp(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: -4}, 2)
	if end.X != 10 || end.Y != -4 {
		t.Errorf("Lerp past end = %+v, want clamp to target", end)
	}
}
