package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/render"
)

// MeterRenderer draws the culture meter on the second header row
type MeterRenderer struct{}

// NewMeterRenderer creates the meter layer
func NewMeterRenderer() *MeterRenderer { return &MeterRenderer{} }

// Render implements render.SystemRenderer
func (r *MeterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rs := ctx.State
	if rs.Stage != engine.StagePlaying && rs.Stage != engine.StageEnded {
		return
	}

	const y = 1
	label := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText)
	x := buf.SetString(1, y, "Culture ", label, 0) + 1

	suffix := fmt.Sprintf(" %d (%d..%d)", rs.Score, rs.ScoreMin, rs.ScoreMax)
	barW := ctx.ScreenWidth - x - render.StringWidth(suffix) - 3
	if barW > constants.MeterWidth {
		barW = constants.MeterWidth
	}
	if barW < 4 {
		return
	}

	buf.Set(x, y, '▕', label)
	filled := rs.FillPercent * barW / 100
	for i := 0; i < barW; i++ {
		if i < filled {
			color := render.GetMeterColor(float64(i+1) / float64(barW))
			buf.Set(x+1+i, y, '█', label.Foreground(color))
		} else {
			buf.Set(x+1+i, y, '░', label.Foreground(render.RgbTextDim))
		}
	}
	buf.Set(x+1+barW, y, '▏', label)
	buf.SetString(x+2+barW, y, suffix, label, 0)
}
