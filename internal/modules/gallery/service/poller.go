package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/gallery/domain"
)

// Fetcher reads one page of the feed
type Fetcher interface {
	Fetch(ctx context.Context, q domain.Query) ([]feedDomain.Item, error)
}

// Result is the outcome of one fetch
type Result struct {
	Items  []feedDomain.Item
	Err    error
	Manual bool
}

// Poller re-reads the feed on a fixed interval so that time-limited media
// URLs are replaced before they expire. Fetches are not sequenced: a manual
// refresh may overlap a periodic one and results are delivered in the order
// they complete.
type Poller struct {
	fetcher  Fetcher
	query    domain.Query
	interval time.Duration
	logger   *slog.Logger
	results  chan Result

	mu      sync.Mutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewPoller creates a poller for query
func NewPoller(fetcher Fetcher, query domain.Query, interval time.Duration) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		fetcher:  fetcher,
		query:    query,
		interval: interval,
		logger:   slog.Default(),
		results:  make(chan Result, 4),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetLogger sets the logger
func (p *Poller) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// Results delivers fetch outcomes. The channel is closed by Stop.
func (p *Poller) Results() <-chan Result {
	return p.results
}

// Start fetches immediately and then on every tick
func (p *Poller) Start() {
	if !p.add() {
		return
	}
	go p.pollLoop()
}

// Refresh starts an extra fetch outside the schedule
func (p *Poller) Refresh() {
	if !p.add() {
		return
	}
	go func() {
		defer p.wg.Done()
		p.fetch(true)
	}()
}

// Stop ends polling and waits for in-flight fetches
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	close(p.results)
}

func (p *Poller) add() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return false
	}
	p.wg.Add(1)
	return true
}

func (p *Poller) pollLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Initial fetch
	p.fetch(false)

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.fetch(false)
		}
	}
}

func (p *Poller) fetch(manual bool) {
	items, err := p.fetcher.Fetch(p.ctx, p.query)
	if err != nil {
		if p.ctx.Err() != nil {
			return
		}
		p.logger.Warn("Feed fetch failed", "database_id", p.query.DatabaseID, "error", err)
	}

	select {
	case p.results <- Result{Items: items, Err: err, Manual: manual}:
	case <-p.ctx.Done():
	}
}
