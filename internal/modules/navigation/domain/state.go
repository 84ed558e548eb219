package domain

import "fmt"

// State is the lightbox position. The zero value is Closed.
type State struct {
	Open  bool
	Post  int
	Slide int
}

// Closed is the state with no item shown
var Closed = State{}

// At returns an open state at the given position.
func At(post, slide int) State {
	return State{Open: true, Post: post, Slide: slide}
}

func (s State) String() string {
	if !s.Open {
		return "Closed"
	}
	return fmt.Sprintf("Open(%d,%d)", s.Post, s.Slide)
}
