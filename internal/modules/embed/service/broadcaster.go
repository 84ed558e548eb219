package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/reshetovitsme/gallery-feed/internal/modules/embed/domain"
)

// Broadcaster forwards observed content heights to the host. Delivery runs
// on its own goroutine and is fire-and-forget: when several heights are
// observed before the host takes the previous one, only the latest is sent.
type Broadcaster struct {
	notifier HostNotifier
	logger   *slog.Logger

	mu       sync.Mutex
	last     int
	observed bool
	pending  *int
	detached bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// NewBroadcaster creates a broadcaster and starts its delivery loop
func NewBroadcaster(notifier HostNotifier) *Broadcaster {
	b := &Broadcaster{
		notifier: notifier,
		logger:   slog.Default(),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	b.wg.Add(1)
	go b.loop()
	return b
}

// SetLogger sets the logger
func (b *Broadcaster) SetLogger(logger *slog.Logger) {
	b.logger = logger
}

// Observe records a measurement of the content region. The first
// measurement and every change are forwarded; repeats are ignored.
func (b *Broadcaster) Observe(height int) {
	b.mu.Lock()
	if b.detached || (b.observed && height == b.last) {
		b.mu.Unlock()
		return
	}
	b.observed = true
	b.last = height
	b.pending = &height
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Detach stops observing. No notification is sent after Detach returns.
func (b *Broadcaster) Detach() {
	b.mu.Lock()
	if b.detached {
		b.mu.Unlock()
		return
	}
	b.detached = true
	b.pending = nil
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
}

func (b *Broadcaster) loop() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case <-b.wake:
		}

		b.mu.Lock()
		pending := b.pending
		b.pending = nil
		detached := b.detached
		b.mu.Unlock()

		if detached || pending == nil {
			continue
		}
		if err := b.notifier.Notify(context.Background(), domain.Resize(*pending)); err != nil {
			b.logger.Debug("Resize notification failed", "height", *pending, "error", err)
		}
	}
}
