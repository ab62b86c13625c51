package client

import "pong/internal/input"

// Event is one item of the ordered stream a host feeds into a Game.
type Event interface {
	event()
}

type Render struct{}

// Update advances the simulation by DT seconds.
type Update struct {
	DT float64
}

type KeyPress struct {
	Button input.Button
}

type KeyRelease struct {
	Button input.Button
}

// Quit ends Run.
type Quit struct{}

func (Render) event()     {}
func (Update) event()     {}
func (KeyPress) event()   {}
func (KeyRelease) event() {}
func (Quit) event()       {}
