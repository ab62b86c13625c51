package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pong/internal/input"
	"pong/internal/pong"
	"pong/internal/renderer"
)

// statsEvery is how many frames pass between frame statistics log lines.
const statsEvery = 600

// Game is one local match. Every method must be called from the same goroutine.
type Game struct {
	ID    uuid.UUID
	State *pong.GameState

	mapper   *input.Mapper
	renderer *renderer.Renderer
	logger   *slog.Logger
	done     bool
}

func NewGame(canvas renderer.Canvas, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	logger = logger.With(slog.String("session", id.String()))

	state := pong.NewGameState()
	g := &Game{
		ID:       id,
		State:    state,
		mapper:   input.NewMapper(state, logger),
		renderer: renderer.New(canvas),
		logger:   logger,
	}
	state.OnGoal(g.logGoal)

	return g
}

// Handle applies a single event. It returns false once the game has been asked to quit.
func (g *Game) Handle(ev Event) bool {
	if g.done {
		return false
	}

	switch e := ev.(type) {
	case Render:
		g.renderer.Render(g.State)
		if n := g.renderer.Frames(); n%statsEvery == 0 {
			g.logger.Debug("frame stats", slog.Int("frames", n), slog.Duration("frame_time", g.renderer.FrameTime()))
		}
	case Update:
		g.State.Update(e.DT)
	case KeyPress:
		g.mapper.Press(e.Button)
	case KeyRelease:
		g.mapper.Release(e.Button)
	case Quit:
		g.logger.Info("quitting", slog.Uint64("left", uint64(g.State.Left.Score)), slog.Uint64("right", uint64(g.State.Right.Score)))
		g.done = true
		return false
	default:
		g.logger.Debug("unhandled event", slog.String("type", fmt.Sprintf("%T", ev)))
	}
	return true
}

// Run handles events in delivery order until a Quit, the channel closing or ctx ending.
func (g *Game) Run(ctx context.Context, events <-chan Event) error {
	g.logger.Info("game started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.Handle(ev) {
				return nil
			}
		}
	}
}

func (g *Game) logGoal(goal pong.Goal) {
	g.logger.Info(fmt.Sprintf("Point for %s! Total: %d : %d", goal.Scorer, goal.Left, goal.Right),
		slog.String("scorer", goal.Scorer.String()),
		slog.Uint64("left", uint64(goal.Left)),
		slog.Uint64("right", uint64(goal.Right)),
	)
}
