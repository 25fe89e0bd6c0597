package renderers

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/render"
)

// DebugRenderer prints engine counters on the bottom row
type DebugRenderer struct {
	visible atomic.Bool
}

// NewDebugRenderer creates a hidden debug layer
func NewDebugRenderer() *DebugRenderer { return &DebugRenderer{} }

// IsVisible implements render.VisibilityToggle
func (r *DebugRenderer) IsVisible() bool { return r.visible.Load() }

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

// Render implements render.SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rs := ctx.State
	text := fmt.Sprintf(" tick=%d stage=%s items=%d active=%d queued=%d zone=%s play=%.0fx%.0f ",
		rs.Tick, rs.Stage, len(rs.Items), rs.Active, rs.Queued, rs.Zone, rs.PlayArea.Width, rs.PlayArea.Height)
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbTextDim)
	buf.SetString(0, ctx.ScreenHeight-1, text, style, ctx.ScreenWidth)

	// Metrics stack upward from the row above, right aligned
	y := ctx.ScreenHeight - 2
	for i := len(ctx.Metrics) - 1; i >= 0 && y >= constants.HeaderRows; i-- {
		line := " " + ctx.Metrics[i] + " "
		x := ctx.ScreenWidth - render.StringWidth(line)
		if x < 0 {
			x = 0
		}
		buf.SetString(x, y, line, style, ctx.ScreenWidth-x)
		y--
	}
}
