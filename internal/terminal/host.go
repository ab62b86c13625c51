package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/client"
	"pong/internal/input"
)

// Host turns tcell input and a fixed-rate ticker into client events.
// Terminals never report key releases, so releases are synthesised by AutoRelease.
type Host struct {
	screen    tcell.Screen
	tick      time.Duration
	release   *input.AutoRelease
	mouseDown bool
}

func NewHost(screen tcell.Screen, tick, releaseAfter time.Duration) *Host {
	return &Host{
		screen:  screen,
		tick:    tick,
		release: input.NewAutoRelease(releaseAfter),
	}
}

// Run feeds out until ctx ends or the screen is finalised, then closes out.
func (h *Host) Run(ctx context.Context, out chan<- client.Event) {
	defer close(out)

	polled := make(chan tcell.Event)
	go func() {
		defer close(polled)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case polled <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	send := func(events ...client.Event) bool {
		for _, ev := range events {
			select {
			case out <- ev:
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-polled:
			if !ok {
				return
			}
			if !send(h.translate(ev, time.Now())...) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !send(h.expire(now)...) {
				return
			}
			if !send(client.Update{DT: dt}, client.Render{}) {
				return
			}
		}
	}
}

func (h *Host) expire(now time.Time) []client.Event {
	var events []client.Event
	for _, k := range h.release.Expire(now) {
		events = append(events, client.KeyRelease{Button: input.KeyboardButton(k)})
	}
	return events
}

// translate maps one tcell event to client events. Key repeats only keep a key held.
// A fresh press releases the other key of its pair first: a keyboard would have reported
// that release before the new press, and a late synthetic one would stop the paddle.
func (h *Host) translate(ev tcell.Event, now time.Time) []client.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return []client.Event{client.Quit{}}
		}
		k := keyOf(ev)
		if !h.release.Press(k, now) {
			return nil
		}
		var events []client.Event
		if p, ok := input.Partner(k); ok && h.release.Forget(p) {
			events = append(events, client.KeyRelease{Button: input.KeyboardButton(p)})
		}
		return append(events, client.KeyPress{Button: input.KeyboardButton(k)})
	case *tcell.EventMouse:
		pressed := ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
		if pressed == h.mouseDown {
			return nil
		}
		h.mouseDown = pressed
		b := input.MouseButton(int(ev.Buttons()))
		if pressed {
			return []client.Event{client.KeyPress{Button: b}}
		}
		return []client.Event{client.KeyRelease{Button: b}}
	case *tcell.EventResize:
		h.screen.Sync()
		return []client.Event{client.Render{}}
	}
	return nil
}

func keyOf(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune())
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	default:
		return input.KeyUnknown
	}
}
