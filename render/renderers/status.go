package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/render"
)

// StatusRenderer draws the top status bar
type StatusRenderer struct{}

// NewStatusRenderer creates the status layer
func NewStatusRenderer() *StatusRenderer { return &StatusRenderer{} }

// Render implements render.SystemRenderer
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rs := ctx.State
	bar := tcell.StyleDefault.Background(render.RgbStatusBar).Foreground(render.RgbText)
	buf.Fill(0, 0, ctx.ScreenWidth, 1, ' ', bar)

	region := ctx.Region
	if region == "" {
		region = "Culture Catch"
	}
	left := buf.SetString(1, 0, region, bar.Bold(true), ctx.ScreenWidth/2)

	// Right-aligned segments, drawn right to left
	type segment struct {
		text string
		bg   tcell.Color
	}
	timerBg := render.RgbTimerBg
	if rs.Warning {
		timerBg = render.RgbWarningBg
	}
	segs := []segment{
		{fmt.Sprintf(" %d/%d ", rs.Collected, rs.Total), render.RgbZoneCorrect},
		{fmt.Sprintf(" Score %d ", rs.Score), render.RgbScoreBg},
		{fmt.Sprintf(" %02d:%02d ", rs.TimeRemaining/60, rs.TimeRemaining%60), timerBg},
	}
	if ctx.Muted {
		segs = append(segs, segment{constants.StatusMuted, render.RgbMutedBg})
	}
	if ctx.Debug {
		segs = append(segs, segment{constants.StatusDebug, render.RgbMutedBg})
	}

	x := ctx.ScreenWidth
	for _, s := range segs {
		w := render.StringWidth(s.text)
		if x-w <= left+1 {
			break
		}
		x -= w
		buf.SetString(x, 0, s.text, tcell.StyleDefault.Background(s.bg).Foreground(render.RgbStatusText), 0)
	}
}
