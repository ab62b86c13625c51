package input

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"pong/internal/pong"
)

func newTestMapper() (*Mapper, *pong.GameState, *bytes.Buffer) {
	var buf bytes.Buffer
	state := pong.NewGameState()
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewMapper(state, logger), state, &buf
}

func TestMapperPress(t *testing.T) {
	tests := []struct {
		Name  string
		Key   Key
		Left  pong.VerticalDir
		Right pong.VerticalDir
	}{
		{Name: "up arrow", Key: KeyUp, Left: pong.Stationary, Right: pong.Up},
		{Name: "down arrow", Key: KeyDown, Left: pong.Stationary, Right: pong.Down},
		{Name: "w", Key: KeyW, Left: pong.Up, Right: pong.Stationary},
		{Name: "s", Key: KeyS, Left: pong.Down, Right: pong.Stationary},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			m, state, buf := newTestMapper()

			m.Press(KeyboardButton(tt.Key))

			assert.Equal(t, tt.Left, state.Left.Direction)
			assert.Equal(t, tt.Right, state.Right.Direction)
			assert.Empty(t, buf.String())
		})
	}
}

func TestMapperPressTwice(t *testing.T) {
	m, state, _ := newTestMapper()

	m.Press(KeyboardButton(KeyUp))
	m.Press(KeyboardButton(KeyUp))

	assert.Equal(t, pong.Up, state.Right.Direction)
}

func TestMapperReleaseAlwaysClears(t *testing.T) {
	m, state, _ := newTestMapper()

	m.Press(KeyboardButton(KeyUp))
	m.Release(KeyboardButton(KeyDown))
	assert.Equal(t, pong.Stationary, state.Right.Direction)

	m.Press(KeyboardButton(KeyS))
	m.Release(KeyboardButton(KeyW))
	assert.Equal(t, pong.Stationary, state.Left.Direction)
}

func TestMapperReleaseOnlyTouchesOwnPaddle(t *testing.T) {
	m, state, _ := newTestMapper()

	m.Press(KeyboardButton(KeyW))
	m.Press(KeyboardButton(KeyDown))
	m.Release(KeyboardButton(KeyUp))

	assert.Equal(t, pong.Up, state.Left.Direction)
	assert.Equal(t, pong.Stationary, state.Right.Direction)
}

func TestMapperUnknownKey(t *testing.T) {
	m, state, buf := newTestMapper()

	m.Press(KeyboardButton(KeyFromRune('x')))

	assert.Equal(t, pong.Stationary, state.Left.Direction)
	assert.Equal(t, pong.Stationary, state.Right.Direction)
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	m.Release(KeyboardButton(KeyFromRune('x')))
	assert.Empty(t, buf.String())
}

func TestMapperMouseIgnored(t *testing.T) {
	m, state, buf := newTestMapper()
	state.Right.Direction = pong.Up

	m.Press(MouseButton(0))
	assert.NotEmpty(t, buf.String())

	m.Release(MouseButton(0))
	assert.Equal(t, pong.Up, state.Right.Direction)
	assert.Equal(t, pong.Stationary, state.Left.Direction)
}

func TestNewMapperNilLogger(t *testing.T) {
	state := pong.NewGameState()
	m := NewMapper(state, nil)

	assert.NotPanics(t, func() { m.Press(MouseButton(1)) })
}
