package domain

// MessageTypeResize is the message type embedding hosts listen for
const MessageTypeResize = "embed-resize"

// Message is sent one-way to the embedding host; no reply is expected.
type Message struct {
	Type   string `json:"type"`
	Height int    `json:"height"`
}

// Resize builds a resize message for the given content height.
func Resize(height int) Message {
	return Message{Type: MessageTypeResize, Height: height}
}
