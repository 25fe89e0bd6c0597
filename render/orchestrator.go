package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator composites the field, the cards, the HUD and the overlays
// into one buffer per frame and pushes it to the screen
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer
}

func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// Register adds a layer; lower priorities draw first, equal priorities in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.layers = append(o.layers, layer{renderer: r, priority: priority})
	sort.SliceStable(o.layers, func(i, j int) bool {
		return o.layers[i].priority < o.layers[j].priority
	})
}

// Resize follows a terminal resize; the next frame repaints everything
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the composited frame, for tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer { return o.buffer }

// RenderFrame draws every visible layer for ctx and shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	if w, h := o.buffer.Size(); w != ctx.ScreenWidth || h != ctx.ScreenHeight {
		o.buffer.Resize(ctx.ScreenWidth, ctx.ScreenHeight)
	}
	o.buffer.Clear()

	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
