package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"pong/internal/pong"
	"pong/internal/renderer"
)

const block = '█'

// Canvas draws arena rectangles as blocks on a tcell screen, stretching the arena over the
// whole screen.
type Canvas struct {
	screen     tcell.Screen
	background tcell.Color
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{
		screen:     screen,
		background: tcell.ColorBlack,
	}
}

func (c *Canvas) Clear(col color.Color) {
	c.background = tcell.FromImageColor(col)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.background))
}

// FillRect covers every cell the rectangle touches. A rectangle always covers at least one
// cell, so the ball never disappears on small terminals. Cells off screen are clipped.
func (c *Canvas) FillRect(r renderer.Rect, col color.Color) {
	width, height := c.screen.Size()
	x0, x1 := span(r.Min.X, r.Max.X, pong.ScreenWidth, width)
	y0, y1 := span(r.Min.Y, r.Max.Y, pong.ScreenHeight, height)

	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(col)).Background(c.background)
	for y := max(y0, 0); y <= min(y1, height-1); y++ {
		for x := max(x0, 0); x <= min(x1, width-1); x++ {
			c.screen.SetContent(x, y, block, nil, style)
		}
	}
}

// DrawText prints text centered on the top row.
func (c *Canvas) DrawText(text string, col color.Color) {
	width, _ := c.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(col)).Background(c.background)

	runes := []rune(text)
	x := (width - len(runes)) / 2
	for i, r := range runes {
		if x+i >= 0 && x+i < width {
			c.screen.SetContent(x+i, 0, r, nil, style)
		}
	}
}

func (c *Canvas) Present() {
	c.screen.Show()
}

// span converts an arena interval to an inclusive range of cells.
func span(lo, hi, arena float64, cells int) (int, int) {
	scale := float64(cells) / arena
	first := int(math.Floor(lo * scale))
	last := int(math.Ceil(hi*scale)) - 1
	if last < first {
		last = first
	}
	return first, last
}
