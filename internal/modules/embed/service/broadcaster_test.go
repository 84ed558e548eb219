package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/reshetovitsme/gallery-feed/internal/modules/embed/domain"
)

// recorder collects notifications; gate, when set, blocks each delivery
// until the test releases it and reports on entered that it is waiting.
type recorder struct {
	mu      sync.Mutex
	got     []domain.Message
	seen    chan struct{}
	gate    chan struct{}
	entered chan struct{}
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan struct{}, 100)}
}

func (r *recorder) Notify(_ context.Context, msg domain.Message) error {
	if r.gate != nil {
		r.entered <- struct{}{}
		<-r.gate
	}
	r.mu.Lock()
	r.got = append(r.got, msg)
	r.mu.Unlock()
	r.seen <- struct{}{}
	return nil
}

func (r *recorder) messages() []domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Message(nil), r.got...)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.seen:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestBroadcasterInitialAndChanges(t *testing.T) {
	rec := newRecorder()
	b := NewBroadcaster(rec)
	defer b.Detach()

	b.Observe(120)
	rec.wait(t)
	b.Observe(120)
	b.Observe(300)
	rec.wait(t)

	got := rec.messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %v", got)
	}
	if got[0] != domain.Resize(120) || got[1] != domain.Resize(300) {
		t.Errorf("notifications = %v", got)
	}
	if got[0].Type != "embed-resize" {
		t.Errorf("type = %q", got[0].Type)
	}
}

func TestBroadcasterLastValueWins(t *testing.T) {
	rec := newRecorder()
	rec.gate = make(chan struct{})
	rec.entered = make(chan struct{})
	b := NewBroadcaster(rec)
	defer b.Detach()

	b.Observe(1)
	<-rec.entered
	// The host is still busy with 1; these collapse into the latest value.
	b.Observe(2)
	b.Observe(3)
	b.Observe(4)

	rec.gate <- struct{}{}
	rec.wait(t)
	<-rec.entered
	rec.gate <- struct{}{}
	rec.wait(t)

	got := rec.messages()
	if len(got) != 2 || got[0].Height != 1 || got[1].Height != 4 {
		t.Errorf("expected heights [1 4], got %v", got)
	}
}

func TestBroadcasterDetach(t *testing.T) {
	rec := newRecorder()
	b := NewBroadcaster(rec)

	b.Observe(10)
	rec.wait(t)
	b.Detach()
	b.Observe(20)
	b.Detach()

	time.Sleep(20 * time.Millisecond)
	if got := rec.messages(); len(got) != 1 {
		t.Errorf("expected no notifications after detach, got %v", got)
	}
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	if err := n.Notify(context.Background(), domain.Resize(42)); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if got, want := buf.String(), "{\"type\":\"embed-resize\",\"height\":42}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
