package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/internal/pong"
	"pong/internal/renderer"
)

// Canvas draws onto the ebiten screen image of the current frame. The window's logical
// size is the arena size, so arena units map one to one onto pixels.
type Canvas struct {
	target *ebiten.Image
}

func (c *Canvas) Clear(col color.Color) {
	if c.target == nil {
		return
	}
	c.target.Fill(col)
}

func (c *Canvas) FillRect(r renderer.Rect, col color.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), col, false)
}

// DrawText uses the debug font, which is always white.
func (c *Canvas) DrawText(text string, _ color.Color) {
	if c.target == nil {
		return
	}
	ebitenutil.DebugPrintAt(c.target, text, int(pong.ScreenWidth)/2-3*len(text), 2)
}

// Present is a no-op: ebiten shows the frame when Draw returns.
func (c *Canvas) Present() {}
