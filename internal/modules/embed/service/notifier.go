package service

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/reshetovitsme/gallery-feed/internal/modules/embed/domain"
	"github.com/samber/oops"
)

// HostNotifier delivers messages to whatever embeds the gallery.
type HostNotifier interface {
	Notify(ctx context.Context, msg domain.Message) error
}

// WriterNotifier writes each message as one JSON line, for hosts that embed
// the gallery as a child process and read its output stream.
type WriterNotifier struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterNotifier creates a notifier writing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{enc: json.NewEncoder(w)}
}

func (n *WriterNotifier) Notify(_ context.Context, msg domain.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enc.Encode(msg); err != nil {
		return oops.With("type", msg.Type, "height", msg.Height).Wrap(err)
	}
	return nil
}
