package pong

type VerticalDir int

const (
	Stationary VerticalDir = iota
	Up
	Down
)

func (d VerticalDir) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Stationary:
		return "stationary"
	default:
		return "unknown"
	}
}

type Score uint

// Paddle is one player's bar. Only Position.Y changes during a game.
type Paddle struct {
	Position  Point
	Direction VerticalDir
	Score     Score
}

func NewPaddle(x float64) Paddle {
	return Paddle{
		Position: Point{
			X: x,
			Y: ScreenHeight / 2,
		},
		Direction: Stationary,
	}
}

// Intersects reports whether ball lies within the paddle's vertical span.
// The x coordinate is not checked: callers only ask once the ball is in the paddle's band.
func (p Paddle) Intersects(ball Point) bool {
	return ball.Y <= p.Position.Y+BarLength && ball.Y >= p.Position.Y-BarLength
}

// move stops the paddle at the arena edge, then applies one tick of motion.
// The edge check uses the position from before this tick, so a paddle can overshoot
// by up to one tick of travel before it stops.
func (p *Paddle) move(dt float64) {
	if (p.Direction == Up && p.Position.Y < BarLength) ||
		(p.Direction == Down && p.Position.Y > ScreenHeight-BarLength) {
		p.Direction = Stationary
	}

	switch p.Direction {
	case Up:
		p.Position.Y -= BarSpeed * dt
	case Down:
		p.Position.Y += BarSpeed * dt
	case Stationary:
	}
}
