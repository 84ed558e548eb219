package service

import (
	"sync"

	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/navigation/domain"
)

// Controller holds the lightbox state together with the item list it
// indexes. Every call applies one transition against the latest state.
type Controller struct {
	mu    sync.Mutex
	items []feedDomain.Item
	state domain.State
}

// New creates a closed controller
func New() *Controller {
	return &Controller{}
}

// Replace swaps in a new item list and re-clamps the state against it.
func (c *Controller) Replace(items []feedDomain.Item) domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.state = Revalidate(c.state, items)
	return c.state
}

func (c *Controller) apply(t func(domain.State, []feedDomain.Item) domain.State) domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = t(c.state, c.items)
	return c.state
}

func (c *Controller) OpenAt(post, slide int) domain.State {
	return c.apply(func(_ domain.State, items []feedDomain.Item) domain.State {
		return OpenAt(items, post, slide)
	})
}

func (c *Controller) StepPrev() domain.State {
	return c.apply(StepPrev)
}

func (c *Controller) StepNext() domain.State {
	return c.apply(StepNext)
}

func (c *Controller) JumpSlide(slide int) domain.State {
	return c.apply(func(s domain.State, items []feedDomain.Item) domain.State {
		return JumpSlide(s, items, slide)
	})
}

func (c *Controller) Close() domain.State {
	return c.apply(func(s domain.State, _ []feedDomain.Item) domain.State {
		return Close(s)
	})
}

// State returns the current state
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the item and media shown by an open lightbox.
func (c *Controller) Current() (feedDomain.Item, feedDomain.Media, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Open {
		return feedDomain.Item{}, feedDomain.Media{}, false
	}
	item := c.items[c.state.Post]
	if c.state.Slide >= len(item.Media) {
		return item, feedDomain.Media{}, true
	}
	return item, item.Media[c.state.Slide], true
}
