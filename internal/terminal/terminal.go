package terminal

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// RequireTTY fails when f is not attached to a terminal.
func RequireTTY(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return errors.Errorf("%s is not a terminal", f.Name())
	}
	return nil
}

// OpenScreen creates and initialises a tcell screen with mouse reporting enabled so
// clicks reach the input mapper.
func OpenScreen() (tcell.Screen, error) {
	if err := RequireTTY(os.Stdout); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising screen")
	}
	screen.HideCursor()
	screen.EnableMouse()
	screen.Clear()

	return screen, nil
}
