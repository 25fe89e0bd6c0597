package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/render"
)

// CardRenderer draws the active cards; the dragged card is drawn last
type CardRenderer struct{}

// NewCardRenderer creates the card layer
func NewCardRenderer() *CardRenderer { return &CardRenderer{} }

// Render implements render.SystemRenderer
func (r *CardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.State.Stage != engine.StagePlaying {
		return
	}
	var dragged *engine.ItemView
	for i := range ctx.State.Items {
		item := &ctx.State.Items[i]
		if item.Dragging {
			dragged = item
			continue
		}
		drawCard(buf, item)
	}
	if dragged != nil {
		drawCard(buf, dragged)
	}
}

func cardStyle(item *engine.ItemView) (border, body tcell.Style, ok bool) {
	border = tcell.StyleDefault.Background(render.RgbCardBg).Foreground(render.RgbCardBorder)
	body = tcell.StyleDefault.Background(render.RgbCardBg).Foreground(render.RgbText)

	switch {
	case item.Vanishing:
		if item.Progress >= 1 {
			return border, body, false
		}
		// Fade to the zone's verdict color then drop out
		border = border.Foreground(render.RgbZoneCorrect)
		if item.Progress > 0.5 {
			body = body.Dim(true)
			border = border.Dim(true)
		}
	case item.Dragging && item.Hover:
		border = border.Foreground(render.RgbCardHover).Bold(true)
	case item.Dragging:
		border = border.Foreground(render.RgbCardDragging).Bold(true)
	case item.Returning:
		border = border.Foreground(render.RgbZoneWrong)
		body = body.Dim(true)
	}
	return border, body, true
}

func drawCard(buf *render.RenderBuffer, item *engine.ItemView) {
	border, body, ok := cardStyle(item)
	if !ok {
		return
	}
	x, y := render.CellOf(item.Rect.X), render.CellOf(item.Rect.Y)
	w, h := int(item.Rect.Width), int(item.Rect.Height)

	buf.Fill(x, y, w, h, ' ', body)
	drawBox(buf, x, y, w, h, border)

	text := item.Label
	if item.Emoji != "" {
		text = item.Emoji + " " + item.Label
	}
	centerText(buf, x+1, y+h/2, w-2, text, body)
}
