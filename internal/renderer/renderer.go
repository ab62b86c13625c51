package renderer

import (
	"fmt"
	"image/color"
	"time"

	"pong/internal/pong"
)

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Rect is an axis aligned rectangle in arena units spanning Min to Max.
type Rect struct {
	Min pong.Point
	Max pong.Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Scene is everything a host needs to draw one frame.
type Scene struct {
	Background color.Color
	Foreground color.Color
	Ball       Rect
	Left       Rect
	Right      Rect
	Score      string
}

// Canvas is a drawing surface owned by a host. Coordinates are arena units; the canvas
// scales them to its own resolution.
type Canvas interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	Present()
}

// TextCanvas is implemented by canvases that can print the score line.
type TextCanvas interface {
	Canvas
	DrawText(text string, c color.Color)
}

func Layout(s *pong.GameState) Scene {
	// the ball position is the center of the square, not its corner
	half := pong.BallSize / 2
	ball := Rect{
		Min: s.Ball.Position.Sub(pong.Point{X: half, Y: half}),
		Max: s.Ball.Position.Add(pong.Point{X: half, Y: half}),
	}

	left := Rect{
		Min: pong.Point{X: pong.BarBack, Y: s.Left.Position.Y - pong.BarLength},
		Max: pong.Point{X: pong.BarFace, Y: s.Left.Position.Y + pong.BarLength},
	}
	right := Rect{
		Min: pong.Point{X: pong.ScreenWidth - pong.BarFace, Y: s.Right.Position.Y - pong.BarLength},
		Max: pong.Point{X: pong.ScreenWidth - pong.BarBack, Y: s.Right.Position.Y + pong.BarLength},
	}

	return Scene{
		Background: Black,
		Foreground: White,
		Ball:       ball,
		Left:       left,
		Right:      right,
		Score:      fmt.Sprintf("%d : %d", s.Left.Score, s.Right.Score),
	}
}

func Draw(c Canvas, s *pong.GameState) {
	scene := Layout(s)

	c.Clear(scene.Background)
	c.FillRect(scene.Ball, scene.Foreground)
	c.FillRect(scene.Left, scene.Foreground)
	c.FillRect(scene.Right, scene.Foreground)
	if tc, ok := c.(TextCanvas); ok {
		tc.DrawText(scene.Score, scene.Foreground)
	}
	c.Present()
}

// Renderer draws frames onto a canvas and keeps frame statistics.
type Renderer struct {
	canvas    Canvas
	frames    int
	frameTime time.Duration
}

func New(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

func (r *Renderer) Render(s *pong.GameState) {
	start := time.Now()
	Draw(r.canvas, s)
	r.frames++
	r.frameTime = time.Since(start)
}

func (r *Renderer) Frames() int {
	return r.frames
}

// FrameTime is how long the last Render took.
func (r *Renderer) FrameTime() time.Duration {
	return r.frameTime
}
