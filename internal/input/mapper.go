package input

import (
	"log/slog"

	"pong/internal/pong"
)

// Mapper turns button transitions into paddle directions.
// Up/Down drive the right paddle and W/S drive the left one. Releasing either key of a
// pair stops that paddle, even if the other key of the pair is still held.
type Mapper struct {
	state  *pong.GameState
	logger *slog.Logger
}

func NewMapper(state *pong.GameState, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		state:  state,
		logger: logger,
	}
}

func (m *Mapper) Press(b Button) {
	if b.Device != Keyboard {
		m.logger.Warn("unsupported input", slog.String("device", b.Device.String()))
		return
	}

	switch b.Key {
	case KeyUp:
		m.state.Right.Direction = pong.Up
	case KeyDown:
		m.state.Right.Direction = pong.Down
	case KeyW:
		m.state.Left.Direction = pong.Up
	case KeyS:
		m.state.Left.Direction = pong.Down
	default:
		m.logger.Warn("unknown key", slog.String("key", b.Key.String()))
	}
}

// Release never logs: unknown keys were already reported on press.
func (m *Mapper) Release(b Button) {
	if b.Device != Keyboard {
		return
	}

	switch b.Key {
	case KeyUp, KeyDown:
		m.state.Right.Direction = pong.Stationary
	case KeyW, KeyS:
		m.state.Left.Direction = pong.Stationary
	}
}
