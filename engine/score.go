package engine

// ScoreState is the bounded culture meter
type ScoreState struct {
	Value int
	Min   int
	Max   int
}

// NewScoreState starts at zero clamped into [lo, hi]
func NewScoreState(lo, hi int) ScoreState {
	s := ScoreState{Min: lo, Max: hi}
	s.Value = s.clamp(0)
	return s
}

// ApplyDelta adds d and clamps, returning the new value
func (s *ScoreState) ApplyDelta(d int) int {
	s.Value = s.clamp(s.Value + d)
	return s.Value
}

// FillPercent maps the value onto 0..100 for the meter, 0 for a degenerate range
func (s ScoreState) FillPercent() int {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) * 100 / (s.Max - s.Min)
}

func (s ScoreState) clamp(v int) int {
	if v > s.Max {
		v = s.Max
	}
	if v < s.Min {
		v = s.Min
	}
	return v
}
