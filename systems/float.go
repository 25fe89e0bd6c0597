package systems

import (
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/physics"
	"github.com/lixenwraith/culture-catch/vmath"
)

// FloatSystem advances free-floating cards with elastic reflection at the play area bounds
type FloatSystem struct{}

func NewFloatSystem() *FloatSystem {
	return &FloatSystem{}
}

func (s *FloatSystem) Name() string { return "float" }

func (s *FloatSystem) Priority() int { return constants.PriorityFloat }

// Update moves every floating card one tick; skipped while the play area is unmeasured
func (s *FloatSystem) Update(state *engine.EngineState) {
	if !state.Geometry.HasPlay || state.Geometry.Play.Empty() {
		return
	}
	w, h := state.Geometry.Play.Width, state.Geometry.Play.Height

	for slot, id := range state.Slots {
		if !state.Floating(slot) {
			continue
		}
		k := EnsureKinetic(state, id)
		if !k.Anchored {
			Anchor(k, slot, w, h)
		}
		physics.Step(k, w, h, constants.CardWidth, constants.CardHeight)
	}
}

// EnsureKinetic returns the card's kinematic state, creating it unanchored with its table velocity
func EnsureKinetic(state *engine.EngineState, id int) *core.Kinetic {
	if k, ok := state.Kinetics[id]; ok {
		return k
	}
	v := constants.BaseVelocities[id%len(constants.BaseVelocities)]
	k := &core.Kinetic{}
	physics.SetImpulse(k, v[0], v[1])
	state.Kinetics[id] = k
	return k
}

// Anchor places a card at its slot's layout point, clamped so the box fits the area
func Anchor(k *core.Kinetic, slot int, width, height float64) {
	frac := constants.SlotAnchors[slot%len(constants.SlotAnchors)]
	p := vmath.AreaAnchor(core.Area{Width: width, Height: height}, frac[0], frac[1])
	physics.SetPosition(k,
		vmath.Clamp(p.X, 0, width-constants.CardWidth),
		vmath.Clamp(p.Y, 0, height-constants.CardHeight),
	)
	k.Anchored = true
}
