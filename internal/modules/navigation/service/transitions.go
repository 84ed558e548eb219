package service

import (
	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/navigation/domain"
	"github.com/samber/lo"
)

// Transitions are pure functions of (state, items). Each one first
// revalidates the state against items, so indices left over from an older
// list are never trusted.

func lastSlide(items []feedDomain.Item, post int) int {
	return max(len(items[post].Media)-1, 0)
}

// Revalidate clamps an open state into the bounds of items. An empty list
// closes the lightbox.
func Revalidate(s domain.State, items []feedDomain.Item) domain.State {
	if !s.Open {
		return domain.Closed
	}
	if len(items) == 0 {
		return domain.Closed
	}
	post := lo.Clamp(s.Post, 0, len(items)-1)
	slide := lo.Clamp(s.Slide, 0, lastSlide(items, post))
	return domain.At(post, slide)
}

// OpenAt opens (or moves) the lightbox to a clamped position.
func OpenAt(items []feedDomain.Item, post, slide int) domain.State {
	return Revalidate(domain.At(post, slide), items)
}

// StepPrev moves to the previous slide, or to the first slide of the
// previous post. The first slide of the first post is absorbing.
func StepPrev(s domain.State, items []feedDomain.Item) domain.State {
	s = Revalidate(s, items)
	switch {
	case !s.Open:
		return s
	case s.Slide > 0:
		return domain.At(s.Post, s.Slide-1)
	case s.Post > 0:
		return domain.At(s.Post-1, 0)
	default:
		return s
	}
}

// StepNext moves to the next slide, or to the first slide of the next post.
// The last slide of the last post is absorbing.
func StepNext(s domain.State, items []feedDomain.Item) domain.State {
	s = Revalidate(s, items)
	switch {
	case !s.Open:
		return s
	case s.Slide < lastSlide(items, s.Post):
		return domain.At(s.Post, s.Slide+1)
	case s.Post < len(items)-1:
		return domain.At(s.Post+1, 0)
	default:
		return s
	}
}

// JumpSlide selects a slide of the current post, clamped into range.
func JumpSlide(s domain.State, items []feedDomain.Item, slide int) domain.State {
	s = Revalidate(s, items)
	if !s.Open {
		return s
	}
	return domain.At(s.Post, lo.Clamp(slide, 0, lastSlide(items, s.Post)))
}

// Close closes the lightbox.
func Close(domain.State) domain.State {
	return domain.Closed
}
