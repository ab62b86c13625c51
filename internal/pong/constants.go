package pong

import "math"

// Arena dimensions and speeds, in arena units (pixels) and seconds.
const (
	ScreenWidth  float64 = 500.0
	ScreenHeight float64 = 250.0

	// BarLength is half the length of a paddle.
	BarLength float64 = 25.0
	BallSpeed float64 = 200.0
	BarSpeed  float64 = 100.0

	BallSize float64 = 5.0

	// Paddles occupy the x-band [BarBack, BarFace] from their wall.
	BarFace float64 = 15.0
	BarBack float64 = 10.0

	InitialDirection float64 = math.Pi / 4
)

// Quarter is the rotation applied to the ball's direction on every bounce.
const Quarter float64 = math.Pi / 2

const (
	ballStartX float64 = 250.0
	ballStartY float64 = 125.0
)

// BallStart is where the ball is served from.
func BallStart() Point {
	return Point{X: ballStartX, Y: ballStartY}
}
