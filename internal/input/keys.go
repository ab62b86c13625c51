package input

import "fmt"

// Key identifies a keyboard key by the rune it types. Keys without a printable rune use
// the control code or arrow glyph.
type Key rune

const (
	KeyUnknown Key = 0
	KeyEscape  Key = 27
	KeyW       Key = 'W'
	KeyS       Key = 'S'
	KeyLeft    Key = '←'
	KeyUp      Key = '↑'
	KeyRight   Key = '→'
	KeyDown    Key = '↓'
)

// KeyFromRune maps a typed rune to a Key. Letters are upper-cased so w and W are the same key.
func KeyFromRune(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r = r - 'a' + 'A'
	}
	return Key(r)
}

func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "Unknown"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	}
	if k < ' ' {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return string(rune(k))
}

// Partner returns the other key steering the same paddle.
func Partner(k Key) (Key, bool) {
	switch k {
	case KeyUp:
		return KeyDown, true
	case KeyDown:
		return KeyUp, true
	case KeyW:
		return KeyS, true
	case KeyS:
		return KeyW, true
	}
	return KeyUnknown, false
}

type Device int

const (
	Keyboard Device = iota
	Mouse
)

func (d Device) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// Button is anything that can be pressed and released. For mouse buttons Key holds the
// button index.
type Button struct {
	Device Device
	Key    Key
}

func KeyboardButton(k Key) Button {
	return Button{Device: Keyboard, Key: k}
}

func MouseButton(index int) Button {
	return Button{Device: Mouse, Key: Key(index)}
}
