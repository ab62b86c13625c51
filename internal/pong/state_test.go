package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const epsilon = 1e-9

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	assert.Equal(t, BallStart(), s.Ball.Position)
	assert.Equal(t, InitialDirection, s.Ball.Direction)
	for _, p := range []Paddle{s.Left, s.Right} {
		assert.Equal(t, ScreenHeight/2, p.Position.Y)
		assert.Equal(t, Stationary, p.Direction)
		assert.Zero(t, p.Score)
	}
	assert.Equal(t, BarFace, s.Left.Position.X)
	assert.Equal(t, ScreenWidth-BarFace, s.Right.Position.X)
}

func TestUpdateMovesBallByDisplacement(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		s := NewGameState()
		start := Point{X: 100 + r.Float64()*300, Y: 50 + r.Float64()*150}
		dir := r.Float64() * 4 * math.Pi
		dt := r.Float64() * 0.2
		s.Ball = Ball{Position: start, Direction: dir}

		_, scored := s.Update(dt)
		require.False(t, scored)

		assert.InDelta(t, start.X+math.Sin(dir)*BallSpeed*dt, s.Ball.Position.X, epsilon)
		assert.InDelta(t, start.Y+math.Cos(dir)*BallSpeed*dt, s.Ball.Position.Y, epsilon)
	}
}

func TestUpdateZeroDeltaKeepsBall(t *testing.T) {
	s := NewGameState()

	s.Update(0)

	assert.Equal(t, BallStart(), s.Ball.Position)
	assert.Equal(t, InitialDirection, s.Ball.Direction)
}

func TestExitRightScoresForLeft(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: ScreenWidth - 16, Y: 125}, Direction: math.Pi / 2}
	s.Right.Position.Y = 30

	goal, scored := s.Update(0.1)

	require.True(t, scored)
	assert.Equal(t, Goal{Scorer: Left, Left: 1, Right: 0}, goal)
	assert.Equal(t, BallStart(), s.Ball.Position)
	assert.Equal(t, math.Pi/2, s.Ball.Direction)
	assert.Equal(t, Score(1), s.Left.Score)
	assert.Equal(t, Score(0), s.Right.Score)
}

func TestExitLeftScoresForRight(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: 5, Y: 125}, Direction: -math.Pi / 2}

	goal, scored := s.Update(0.1)

	require.True(t, scored)
	assert.Equal(t, Right, goal.Scorer)
	assert.Equal(t, BallStart(), s.Ball.Position)
	assert.Equal(t, Score(0), s.Left.Score)
	assert.Equal(t, Score(1), s.Right.Score)
}

func TestRightPaddleBounce(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: ScreenWidth - BarFace - 0.01, Y: 125}, Direction: math.Pi / 2}

	_, scored := s.Update(0.01)

	require.False(t, scored)
	assert.InDelta(t, ScreenWidth-BarFace-0.01+2, s.Ball.Position.X, epsilon)
	assert.InDelta(t, math.Pi, s.Ball.Direction, epsilon)
	assert.Zero(t, s.Left.Score)
	assert.Zero(t, s.Right.Score)
}

func TestLeftPaddleBounce(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: BarFace + 1, Y: 125}, Direction: -math.Pi / 2}

	_, scored := s.Update(0.01)

	require.False(t, scored)
	assert.InDelta(t, BarFace-1, s.Ball.Position.X, epsilon)
	assert.InDelta(t, -math.Pi, s.Ball.Direction, epsilon)
}

func TestMissedPaddleInBandDoesNotBounce(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: ScreenWidth - BarFace - 0.01, Y: 125}, Direction: math.Pi / 2}
	s.Right.Position.Y = 200

	_, scored := s.Update(0.01)

	require.False(t, scored)
	assert.InDelta(t, math.Pi/2, s.Ball.Direction, epsilon)
}

func TestBottomWallRotatesClockwise(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: 250, Y: ScreenHeight}, Direction: 0}

	s.Update(0.01)

	assert.InDelta(t, Quarter, s.Ball.Direction, epsilon)
	assert.InDelta(t, ScreenHeight+2, s.Ball.Position.Y, epsilon)
}

func TestTopWallRotatesCounterClockwise(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Position: Point{X: 250, Y: 1}, Direction: math.Pi}

	s.Update(0.01)

	assert.InDelta(t, math.Pi-Quarter, s.Ball.Direction, epsilon)
}

func TestWallAppliesInSameTickAsPaddleBounce(t *testing.T) {
	s := NewGameState()
	s.Right.Position.Y = ScreenHeight
	s.Ball = Ball{Position: Point{X: ScreenWidth - BarFace, Y: ScreenHeight}, Direction: 0}

	s.Update(0.01)

	assert.InDelta(t, 2*Quarter, s.Ball.Direction, epsilon)
}

func TestPaddleStopsAtTop(t *testing.T) {
	s := NewGameState()
	s.Left.Position.Y = BarLength - 1
	s.Left.Direction = Up

	s.Update(0.1)

	assert.Equal(t, Stationary, s.Left.Direction)
	assert.Equal(t, BarLength-1, s.Left.Position.Y)
}

func TestPaddleOvershootsByOneTick(t *testing.T) {
	s := NewGameState()
	s.Left.Position.Y = BarLength + 0.5
	s.Left.Direction = Up

	s.Update(0.1)

	assert.Equal(t, Up, s.Left.Direction)
	assert.InDelta(t, BarLength+0.5-BarSpeed*0.1, s.Left.Position.Y, epsilon)

	s.Update(0.1)

	assert.Equal(t, Stationary, s.Left.Direction)
	assert.InDelta(t, BarLength+0.5-BarSpeed*0.1, s.Left.Position.Y, epsilon)
}

func TestPaddleStopsAtBottom(t *testing.T) {
	s := NewGameState()
	s.Right.Position.Y = ScreenHeight - BarLength + 1
	s.Right.Direction = Down

	s.Update(0.1)

	assert.Equal(t, Stationary, s.Right.Direction)
	assert.Equal(t, ScreenHeight-BarLength+1, s.Right.Position.Y)
}

func TestPaddlesMoveIndependently(t *testing.T) {
	s := NewGameState()
	s.Left.Direction = Down
	s.Right.Direction = Up

	s.Update(0.05)

	assert.InDelta(t, ScreenHeight/2+BarSpeed*0.05, s.Left.Position.Y, epsilon)
	assert.InDelta(t, ScreenHeight/2-BarSpeed*0.05, s.Right.Position.Y, epsilon)
}

func TestScoringRoundTrip(t *testing.T) {
	s := NewGameState()

	s.Ball.Position = Point{X: 5, Y: 125}
	s.Ball.Direction = -math.Pi / 2
	_, scored := s.Update(0.1)
	require.True(t, scored)
	assert.Equal(t, BallStart(), s.Ball.Position)

	s.Ball.Position = Point{X: ScreenWidth - 5, Y: 125}
	s.Ball.Direction = math.Pi / 2
	_, scored = s.Update(0.1)
	require.True(t, scored)
	assert.Equal(t, BallStart(), s.Ball.Position)

	assert.Equal(t, Score(1), s.Left.Score)
	assert.Equal(t, Score(1), s.Right.Score)
}

func TestScoresNeverDecrease(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	s := NewGameState()
	var left, right Score

	for i := 0; i < 20000; i++ {
		switch r.Intn(3) {
		case 0:
			s.Left.Direction = Up
		case 1:
			s.Left.Direction = Down
		default:
			s.Right.Direction = VerticalDir(r.Intn(3))
		}
		s.Update(1.0 / 60)

		require.GreaterOrEqual(t, uint(s.Left.Score), uint(left))
		require.GreaterOrEqual(t, uint(s.Right.Score), uint(right))
		left, right = s.Left.Score, s.Right.Score
	}
}

func TestOnGoalObservers(t *testing.T) {
	s := NewGameState()
	var got []Goal
	var order []int
	s.OnGoal(func(g Goal) {
		got = append(got, g)
		order = append(order, 1)
	})
	s.OnGoal(func(Goal) { order = append(order, 2) })

	s.Update(0.01)
	assert.Empty(t, got)

	s.Ball = Ball{Position: Point{X: ScreenWidth - 1, Y: 10}, Direction: math.Pi / 2}
	s.Right.Position.Y = 200
	s.Update(0.1)

	require.Len(t, got, 1)
	assert.Equal(t, Goal{Scorer: Left, Left: 1}, got[0])
	assert.Equal(t, []int{1, 2}, order)
}
