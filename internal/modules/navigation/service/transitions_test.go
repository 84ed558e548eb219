package service

import (
	"testing"

	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/navigation/domain"
)

// deck builds items with the given media counts.
func deck(counts ...int) []feedDomain.Item {
	items := make([]feedDomain.Item, len(counts))
	for i, n := range counts {
		items[i].ID = string(rune('a' + i))
		for j := 0; j < n; j++ {
			items[i].Media = append(items[i].Media, feedDomain.Media{URL: "u"})
		}
	}
	return items
}

func TestStepPrev(t *testing.T) {
	items := deck(3, 2)
	tests := []struct {
		from domain.State
		want domain.State
	}{
		{domain.At(0, 0), domain.At(0, 0)},
		{domain.At(0, 2), domain.At(0, 1)},
		{domain.At(1, 0), domain.At(0, 0)},
		{domain.At(1, 1), domain.At(1, 0)},
		{domain.Closed, domain.Closed},
	}
	for _, tt := range tests {
		if got := StepPrev(tt.from, items); got != tt.want {
			t.Errorf("StepPrev(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestStepNext(t *testing.T) {
	items := deck(3, 2)
	tests := []struct {
		from domain.State
		want domain.State
	}{
		{domain.At(0, 0), domain.At(0, 1)},
		{domain.At(0, 2), domain.At(1, 0)},
		{domain.At(1, 0), domain.At(1, 1)},
		{domain.At(1, 1), domain.At(1, 1)},
		{domain.Closed, domain.Closed},
	}
	for _, tt := range tests {
		if got := StepNext(tt.from, items); got != tt.want {
			t.Errorf("StepNext(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestJumpSlide(t *testing.T) {
	items := deck(3)
	tests := []struct {
		slide int
		want  domain.State
	}{
		{-1, domain.At(0, 0)},
		{99, domain.At(0, 2)},
		{1, domain.At(0, 1)},
	}
	for _, tt := range tests {
		if got := JumpSlide(domain.At(0, 0), items, tt.slide); got != tt.want {
			t.Errorf("JumpSlide(%d) = %s, want %s", tt.slide, got, tt.want)
		}
	}
	if got := JumpSlide(domain.Closed, items, 1); got != domain.Closed {
		t.Errorf("JumpSlide on closed = %s", got)
	}
}

func TestOpenAtClamps(t *testing.T) {
	items := deck(3, 1)
	tests := []struct {
		post, slide int
		want        domain.State
	}{
		{0, 0, domain.At(0, 0)},
		{5, 5, domain.At(1, 0)},
		{-1, -1, domain.At(0, 0)},
		{0, 7, domain.At(0, 2)},
	}
	for _, tt := range tests {
		if got := OpenAt(items, tt.post, tt.slide); got != tt.want {
			t.Errorf("OpenAt(%d, %d) = %s, want %s", tt.post, tt.slide, got, tt.want)
		}
	}
	if got := OpenAt(nil, 0, 0); got != domain.Closed {
		t.Errorf("OpenAt on empty list = %s, want Closed", got)
	}
}

func TestRevalidateOnShrink(t *testing.T) {
	tests := []struct {
		name  string
		from  domain.State
		items []feedDomain.Item
		want  domain.State
	}{
		{"fewer posts", domain.At(4, 1), deck(2, 3), domain.At(1, 1)},
		{"fewer slides", domain.At(0, 3), deck(2), domain.At(0, 1)},
		{"empty list closes", domain.At(0, 0), nil, domain.Closed},
		{"in range untouched", domain.At(1, 0), deck(1, 1), domain.At(1, 0)},
	}
	for _, tt := range tests {
		if got := Revalidate(tt.from, tt.items); got != tt.want {
			t.Errorf("%s: Revalidate(%s) = %s, want %s", tt.name, tt.from, got, tt.want)
		}
	}
}

func TestRapidInputStaysInRange(t *testing.T) {
	items := deck(2, 1, 3)
	s := OpenAt(items, 0, 0)
	steps := []func(domain.State) domain.State{
		func(s domain.State) domain.State { return StepNext(s, items) },
		func(s domain.State) domain.State { return StepPrev(s, items) },
		func(s domain.State) domain.State { return JumpSlide(s, items, 10) },
	}
	for i := 0; i < 200; i++ {
		s = steps[(i*7)%len(steps)](s)
		if !s.Open || s.Post < 0 || s.Post >= len(items) || s.Slide < 0 || s.Slide >= len(items[s.Post].Media) {
			t.Fatalf("step %d left invalid state %s", i, s)
		}
	}
}

func TestClose(t *testing.T) {
	if got := Close(domain.At(1, 1)); got != domain.Closed {
		t.Errorf("Close() = %s", got)
	}
}
