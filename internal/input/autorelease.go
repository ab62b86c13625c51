package input

import (
	"slices"
	"time"
)

// DefaultHold is above the 660ms X11 autorepeat delay. Terminals with a longer repeat delay
// need releaseAfterMs raised to match.
const DefaultHold = 700 * time.Millisecond

// AutoRelease synthesises key releases for input sources that only report presses and
// key repeats, like terminals. A key counts as released once it has not been seen for
// the hold window, which has to be longer than the keyboard's repeat delay.
type AutoRelease struct {
	hold time.Duration
	seen map[Key]time.Time
}

func NewAutoRelease(hold time.Duration) *AutoRelease {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &AutoRelease{
		hold: hold,
		seen: make(map[Key]time.Time),
	}
}

// Press records k as held at now and reports whether it was a fresh press rather than a repeat.
func (a *AutoRelease) Press(k Key, now time.Time) bool {
	_, held := a.seen[k]
	a.seen[k] = now
	return !held
}

// Expire forgets and returns, in ascending order, every key not seen within the hold window.
func (a *AutoRelease) Expire(now time.Time) []Key {
	var released []Key
	for k, at := range a.seen {
		if now.Sub(at) >= a.hold {
			released = append(released, k)
		}
	}
	for _, k := range released {
		delete(a.seen, k)
	}
	slices.Sort(released)
	return released
}

// Forget drops k without waiting for the hold window. It reports whether k was held.
func (a *AutoRelease) Forget(k Key) bool {
	_, held := a.seen[k]
	delete(a.seen, k)
	return held
}

func (a *AutoRelease) Held(k Key) bool {
	_, ok := a.seen[k]
	return ok
}
