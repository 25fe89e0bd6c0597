package systems

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/engine"
)

// AnimationSystem advances return and vanish transitions and the zone verdict flash
// Finished vanishes are left for the queue system, which owns the slot refill
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Name() string { return "animation" }

func (s *AnimationSystem) Priority() int { return constants.PriorityAnimation }

func (s *AnimationSystem) Update(state *engine.EngineState) {
	for id, ret := range state.Returns {
		ret.Tick++
		if ret.Done() {
			delete(state.Returns, id)
		}
	}

	for _, van := range state.Vanishes {
		if !van.Done() {
			van.Tick++
		}
	}

	if state.Zone.Ticks > 0 {
		state.Zone.Ticks--
		if state.Zone.Ticks == 0 {
			if state.Drag != nil && state.Drag.Hover {
				state.Zone.State = engine.ZoneHover
			} else {
				state.Zone.State = engine.ZoneIdle
			}
		}
	}
}
