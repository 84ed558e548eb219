package tui

import "github.com/reshetovitsme/gallery-feed/internal/modules/gallery/service"

type feedResultMsg struct {
	result service.Result
}
