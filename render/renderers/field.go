package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/render"
)

// FieldRenderer paints the play field and the drop zone
type FieldRenderer struct{}

// NewFieldRenderer creates the field layer
func NewFieldRenderer() *FieldRenderer { return &FieldRenderer{} }

// Render implements render.SystemRenderer
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rs := ctx.State
	if !rs.Geometry || rs.Stage != engine.StagePlaying {
		return
	}

	play := rs.PlayArea
	fieldStyle := tcell.StyleDefault.Background(render.RgbField).Foreground(render.RgbTextDim)
	buf.Fill(render.CellOf(play.X), render.CellOf(play.Y), int(play.Width), int(play.Height), ' ', fieldStyle)

	zone := rs.ZoneArea
	x, y := render.CellOf(zone.X), render.CellOf(zone.Y)
	w, h := int(zone.Width), int(zone.Height)
	color := render.ZoneColor(rs.Zone)

	fill := tcell.StyleDefault.Background(render.RgbBackground).Foreground(color)
	if rs.Zone == engine.ZoneCorrect || rs.Zone == engine.ZoneWrong {
		fill = tcell.StyleDefault.Background(color).Foreground(render.RgbStatusText)
	}
	buf.Fill(x, y, w, h, ' ', fill)
	drawBox(buf, x, y, w, h, fill.Bold(rs.Zone != engine.ZoneIdle))

	label := "🧺 DROP HERE"
	switch rs.Zone {
	case engine.ZoneCorrect:
		label = "✔ +1"
	case engine.ZoneWrong:
		label = "✘ NOT FROM HERE"
	}
	centerText(buf, x+1, y+h/2, w-2, label, fill.Bold(true))
}
