package pong

import "math"

type Ball struct {
	Position Point
	// Direction is an angle in radians. 0 moves the ball toward +y (down the screen),
	// sine gives the x share and cosine the y share.
	Direction float64
}

func NewBall() Ball {
	return Ball{
		Position:  BallStart(),
		Direction: InitialDirection,
	}
}

// Displacement returns how far the ball travels in dt seconds.
func (b Ball) Displacement(dt float64) Point {
	hypo := BallSpeed * dt
	return Point{
		X: math.Sin(b.Direction) * hypo,
		Y: math.Cos(b.Direction) * hypo,
	}
}

// Rotate turns the ball. Bounces rotate by a quarter turn instead of mirroring the velocity.
func (b *Ball) Rotate(angle float64) {
	b.Direction += angle
}

// Reset puts the ball back on the start position. Direction is kept.
func (b *Ball) Reset() {
	b.Position = BallStart()
}
