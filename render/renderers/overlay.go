package renderers

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/render"
)

// OverlayRenderer draws the welcome, countdown and end screens
type OverlayRenderer struct{}

// NewOverlayRenderer creates the overlay layer
func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

// Render implements render.SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rs := ctx.State
	var lines []string

	switch rs.Stage {
	case engine.StageWelcome:
		region := ctx.Region
		if region == "" {
			region = "this region"
		}
		lines = []string{
			constants.WelcomeTitle,
			"",
			fmt.Sprintf(constants.WelcomeHint, region),
			fmt.Sprintf("Score range %d..%d", rs.ScoreMin, rs.ScoreMax),
		}
		if ctx.Fallback {
			lines = append(lines, "(offline deck)")
		}
		if ctx.HasBest {
			lines = append(lines, fmt.Sprintf("Best so far: %d", ctx.BestScore))
		}
		lines = append(lines, "", constants.WelcomePrompt)

	case engine.StageCountdown:
		text := constants.CountdownGo
		if rs.Countdown > 0 {
			text = strconv.Itoa(rs.Countdown)
		}
		lines = []string{text}

	case engine.StagePlaying:
		if !rs.Geometry {
			lines = []string{constants.TooSmallPrompt}
		}

	case engine.StageEnded:
		title := constants.EndedTimeout
		if rs.EndReason == engine.EndCompleted {
			title = constants.EndedCompleted
		}
		lines = []string{
			title,
			"",
			fmt.Sprintf("Final score: %d", rs.Score),
			fmt.Sprintf("Collected %d of %d, %d wrong", rs.Collected, rs.Total, rs.Wrong),
			"",
			constants.EndedPrompt,
		}
	}

	if len(lines) == 0 {
		return
	}
	drawPanel(buf, ctx.ScreenWidth, ctx.ScreenHeight, lines)
}

// drawPanel centers a bordered panel holding lines; the first line is the title
func drawPanel(buf *render.RenderBuffer, sw, sh int, lines []string) {
	w := 0
	for _, l := range lines {
		if lw := render.StringWidth(l); lw > w {
			w = lw
		}
	}
	w += 6
	h := len(lines) + 2
	if w > sw {
		w = sw
	}
	x, y := (sw-w)/2, (sh-h)/2

	panel := tcell.StyleDefault.Background(render.RgbStatusBar).Foreground(render.RgbText)
	buf.Fill(x, y, w, h, ' ', panel)
	drawBox(buf, x, y, w, h, panel.Foreground(render.RgbCardBorder))

	for i, l := range lines {
		style := panel
		if i == 0 {
			style = style.Bold(true).Foreground(render.RgbCardHover)
		}
		centerText(buf, x+1, y+1+i, w-2, l, style)
	}
}
