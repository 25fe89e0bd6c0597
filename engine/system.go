package engine

// System is a per-tick stage of the simulation
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(state *EngineState)
}
