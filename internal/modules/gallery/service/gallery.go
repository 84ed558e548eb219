package service

import (
	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	navDomain "github.com/reshetovitsme/gallery-feed/internal/modules/navigation/domain"
	"github.com/samber/lo"
)

// Navigator is the lightbox state machine the gallery drives
type Navigator interface {
	Replace(items []feedDomain.Item) navDomain.State
}

// Gallery is the client-side view of the feed. The grid shows the latest
// result; the lightbox keeps indexing the last successful list so that a
// failed fetch never invalidates an open slide.
type Gallery struct {
	nav       Navigator
	lastGood  []feedDomain.Item
	displayed []feedDomain.Item
	err       error
	loaded    bool
	reels     bool
}

// NewGallery creates an empty gallery bound to nav
func NewGallery(nav Navigator) *Gallery {
	return &Gallery{nav: nav}
}

// Apply replaces the displayed list with a fetch result. The whole list is
// swapped; a failure clears the grid and records the error.
func (g *Gallery) Apply(r Result) {
	g.loaded = true
	if r.Err != nil {
		g.err = r.Err
		g.displayed = nil
		return
	}

	g.err = nil
	g.lastGood = r.Items
	g.displayed = r.Items
	g.nav.Replace(g.filter(g.lastGood))
}

// Items returns the grid contents under the current view
func (g *Gallery) Items() []feedDomain.Item {
	return g.filter(g.displayed)
}

// Err returns the error of the latest fetch, if it failed
func (g *Gallery) Err() error {
	return g.err
}

// Loaded reports whether any fetch has completed
func (g *Gallery) Loaded() bool {
	return g.loaded
}

// Reels reports whether the video-only view is active
func (g *Gallery) Reels() bool {
	return g.reels
}

// SetReels switches between the full grid and the video-only view
func (g *Gallery) SetReels(on bool) {
	if g.reels == on {
		return
	}
	g.reels = on
	g.nav.Replace(g.filter(g.lastGood))
}

func (g *Gallery) filter(items []feedDomain.Item) []feedDomain.Item {
	if !g.reels {
		return items
	}
	return lo.Filter(items, func(i feedDomain.Item, _ int) bool {
		return i.HasVideoCover()
	})
}
