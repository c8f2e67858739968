package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubble-jump/internal/core"
)

// Visual characters
const (
	PlatformChar  = '▀'
	PlayerChar    = '▓'
	FaceRightChar = '▶'
	FaceLeftChar  = '◀'
	WallChar      = '│'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

var spriteColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorPink,
	core.ColorBlue,
	core.ColorGray,
	core.ColorPink,
}

// viewport maps world coordinates into a screen region.
type viewport struct {
	offX, offY int
	w, h       int
	scaleX     float64
	scaleY     float64
}

// fitViewport picks the largest field below the HUD row that keeps the world's
// aspect ratio on screen.
func fitViewport(dst *core.Screen, worldW, worldH float64) viewport {
	availW := dst.Width() - 2 // side walls
	availH := dst.Height() - 1

	h := availH
	w := int(float64(h) * worldW / worldH * cellAspect)
	if w > availW {
		w = availW
		h = int(float64(w) * worldH / worldW / cellAspect)
	}
	w = core.Max(w, 1)
	h = core.Max(h, 1)

	return viewport{
		offX:   (dst.Width() - w) / 2,
		offY:   1 + (availH-h)/2,
		w:      w,
		h:      h,
		scaleX: float64(w) / worldW,
		scaleY: float64(h) / worldH,
	}
}

// cx and cy floor so that coordinates just outside the field map outside it.
func (v viewport) cx(x float64) int { return v.offX + int(math.Floor(x*v.scaleX)) }
func (v viewport) cy(y float64) int { return v.offY + int(math.Floor(y*v.scaleY)) }

func (v viewport) inside(x, y int) bool {
	return x >= v.offX && x < v.offX+v.w && y >= v.offY && y < v.offY+v.h
}

func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.inside(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// Render draws the session into dst.
func (s *Session) Render(dst *core.Screen) {
	RenderFrame(dst, s.Frame())
}

// RenderFrame draws a frame: bubbles, then decorations, platforms and the
// player once the game has started, then the HUD and any state overlay.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}
	v := fitViewport(dst, f.ViewW, f.ViewH)

	for y := v.offY; y < v.offY+v.h; y++ {
		dst.SetColored(v.offX-1, y, WallChar, core.ColorBlue)
		dst.SetColored(v.offX+v.w, y, WallChar, core.ColorBlue)
	}

	for _, b := range f.Bubbles {
		v.set(dst, v.cx(b.DrawX()), v.cy(b.Y), bubbleGlyph(b.Opacity), core.ColorFoam)
	}

	if f.State.Started {
		for i, sp := range f.Sprites {
			v.set(dst, v.cx(sp.X+sp.Size/2), v.cy(sp.Y+sp.Size/2), sp.Glyph, spriteColors[i%len(spriteColors)])
		}
		for _, p := range f.Platforms {
			drawPlatform(dst, v, p)
		}
		drawPlayer(dst, v, f.Player, f.Facing)
	}

	drawHUD(dst, f.State)

	switch {
	case !f.State.Started:
		drawCenteredMessage(dst, "BUBBLE JUMP", "Press Enter to start")
	case f.State.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", f.State.Score))
	case f.State.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func bubbleGlyph(opacity float64) rune {
	switch {
	case opacity < 0.35:
		return '·'
	case opacity < 0.55:
		return '∘'
	default:
		return '○'
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	color := core.ColorTeal
	switch {
	case p.Touched:
		color = core.ColorGray
	case p.Start:
		color = core.ColorCoral
	}

	x0 := v.cx(p.X)
	x1 := core.Max(v.cx(p.X+p.W), x0+1)
	y := v.cy(p.Y)
	for x := x0; x < x1; x++ {
		v.set(dst, x, y, PlatformChar, color)
	}
}

func drawPlayer(dst *core.Screen, v viewport, pl Player, facing Facing) {
	x0 := v.cx(pl.X)
	x1 := core.Max(v.cx(pl.X+pl.W), x0+1)
	y0 := v.cy(pl.Y)
	y1 := core.Max(v.cy(pl.Y+pl.H), y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.set(dst, x, y, PlayerChar, core.ColorBrightYellow)
		}
	}

	if facing == FacingLeft {
		v.set(dst, x0, y0, FaceLeftChar, core.ColorOrange)
	} else {
		v.set(dst, x1-1, y0, FaceRightChar, core.ColorOrange)
	}
}

func drawHUD(dst *core.Screen, st core.GameState) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("High Score: %d", st.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorCoral)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorCyan)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
