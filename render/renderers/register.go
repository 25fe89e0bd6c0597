package renderers

import "github.com/lixenwraith/culture-catch/render"

// RegisterDefaults installs the standard layers and returns the debug layer for toggling
func RegisterDefaults(o *render.RenderOrchestrator) *DebugRenderer {
	debug := NewDebugRenderer()
	o.Register(NewFieldRenderer(), render.PriorityBackground)
	o.Register(NewCardRenderer(), render.PriorityCards)
	o.Register(NewStatusRenderer(), render.PriorityUI)
	o.Register(NewMeterRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(debug, render.PriorityDebug)
	return debug
}
