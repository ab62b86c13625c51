package pong

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Goal is emitted when the ball leaves the arena past a side wall.
type Goal struct {
	Scorer Side
	Left   Score
	Right  Score
}

type GameState struct {
	Ball  Ball
	Left  Paddle
	Right Paddle

	observers []func(Goal)
}

func NewGameState() *GameState {
	return &GameState{
		Ball:  NewBall(),
		Left:  NewPaddle(BarFace),
		Right: NewPaddle(ScreenWidth - BarFace),
	}
}

// OnGoal registers fn to be called synchronously from Update every time a point is scored.
func (s *GameState) OnGoal(fn func(Goal)) {
	s.observers = append(s.observers, fn)
}

// Paddle returns the paddle defending side.
func (s *GameState) Paddle(side Side) *Paddle {
	if side == Left {
		return &s.Left
	}
	return &s.Right
}

// Update advances the game by dt seconds. The returned bool is true when a point was scored.
func (s *GameState) Update(dt float64) (Goal, bool) {
	s.Ball.Position = s.Ball.Position.Add(s.Ball.Displacement(dt))

	goal, scored := s.process()
	s.bounceWalls()

	s.Left.move(dt)
	s.Right.move(dt)

	if scored {
		for _, fn := range s.observers {
			fn(goal)
		}
	}
	return goal, scored
}

// process handles the side walls: a goal when the ball is past the wall, a bounce when the
// ball is in a paddle's band and the paddle covers it.
// Leaving on the right scores for Left and leaving on the left scores for Right.
func (s *GameState) process() (Goal, bool) {
	pos := s.Ball.Position

	if pos.X >= ScreenWidth-BarFace {
		if pos.X > ScreenWidth {
			return s.score(Left), true
		} else if s.Right.Intersects(pos) {
			s.Ball.Rotate(Quarter)
		}
	} else if pos.X <= BarFace {
		if pos.X < 0 {
			return s.score(Right), true
		} else if s.Left.Intersects(pos) {
			s.Ball.Rotate(-Quarter)
		}
	}
	return Goal{}, false
}

func (s *GameState) bounceWalls() {
	if s.Ball.Position.Y >= ScreenHeight {
		s.Ball.Rotate(Quarter)
	} else if s.Ball.Position.Y <= 0 {
		s.Ball.Rotate(-Quarter)
	}
}

func (s *GameState) score(side Side) Goal {
	s.Ball.Reset()
	s.Paddle(side).Score++

	return Goal{
		Scorer: side,
		Left:   s.Left.Score,
		Right:  s.Right.Score,
	}
}
