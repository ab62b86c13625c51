package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"pong/internal/client"
	"pong/internal/input"
	"pong/internal/pong"
)

const title = "pong"

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Host adapts a client.Game to ebiten's Update/Draw loop.
type Host struct {
	game   *client.Game
	canvas *Canvas
	keys   []ebiten.Key
}

func NewHost(newGame func(*Canvas) *client.Game) *Host {
	canvas := &Canvas{}
	return &Host{
		game:   newGame(canvas),
		canvas: canvas,
	}
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.game.Handle(client.Quit{})
		return ebiten.Termination
	}

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.game.Handle(client.KeyPress{Button: input.KeyboardButton(keyOf(k))})
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.game.Handle(client.KeyRelease{Button: input.KeyboardButton(keyOf(k))})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			h.game.Handle(client.KeyPress{Button: input.MouseButton(int(b))})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			h.game.Handle(client.KeyRelease{Button: input.MouseButton(int(b))})
		}
	}

	h.game.Handle(client.Update{DT: 1 / float64(ebiten.TPS())})
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.target = screen
	h.game.Handle(client.Render{})
}

func (h *Host) Layout(_, _ int) (int, int) {
	return int(pong.ScreenWidth), int(pong.ScreenHeight)
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(h *Host, scale, tps int) error {
	ebiten.SetWindowSize(int(pong.ScreenWidth)*scale, int(pong.ScreenHeight)*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(h)
	h.Close()
	if err != nil {
		return errors.Wrap(err, "running window")
	}
	return nil
}

// Close ends the game. RunGame also returns when the window's close button is used, which
// never reaches Update, so Run calls Close on every exit path. Calling it twice is harmless.
func (h *Host) Close() {
	h.game.Handle(client.Quit{})
}

func keyOf(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyUp
	case ebiten.KeyArrowDown:
		return input.KeyDown
	case ebiten.KeyArrowLeft:
		return input.KeyLeft
	case ebiten.KeyArrowRight:
		return input.KeyRight
	case ebiten.KeyEscape:
		return input.KeyEscape
	}
	// letter keys are named by their letter
	if s := k.String(); len(s) == 1 {
		return input.KeyFromRune(rune(s[0]))
	}
	return input.KeyUnknown
}
