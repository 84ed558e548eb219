package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
)

func record(t *testing.T, raw string) domain.Record {
	t.Helper()
	var r domain.Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("decoding record: %v", err)
	}
	return r
}

type allowAll struct{}

func (allowAll) IsAllowed(string) bool { return true }

type denyAll struct{}

func (denyAll) IsAllowed(string) bool { return false }

// stubRepo returns canned records and records every query it receives.
type stubRepo struct {
	records []domain.Record
	errs    []error
	queries []domain.Query
}

func (s *stubRepo) Query(_ context.Context, q domain.Query) ([]domain.Record, error) {
	s.queries = append(s.queries, q)
	if n := len(s.queries) - 1; n < len(s.errs) && s.errs[n] != nil {
		return nil, s.errs[n]
	}
	return s.records, nil
}

const (
	recordA = `{
		"id": "a",
		"properties": {
			"Post Title": {"type": "title", "title": [{"plain_text": "Sun"}, {"plain_text": "set"}]},
			"Caption": {"type": "rich_text", "rich_text": [{"plain_text": "golden hour"}]},
			"Status": {"type": "select", "select": {"name": "Approved"}},
			"Post Date": {"type": "date", "date": {"start": "2024-05-02"}},
			"Media (URLs or leave blank)": {"type": "files", "files": [
				{"name": "one.jpg", "type": "external", "external": {"url": "https://cdn.example.com/one.jpg"}},
				{"name": "two.png", "type": "file", "file": {"url": "https://files.example.com/two.png?X-Amz-Signature=abc", "expiry_time": "2024-05-02T10:00:00.000Z"}}
			]}
		}
	}`
	recordB = `{
		"id": "b",
		"properties": {
			"Post Title": {"type": "title", "title": [{"plain_text": "Empty"}]},
			"Post Date": {"type": "date", "date": {"start": "2024-05-03"}},
			"Media (URLs or leave blank)": {"type": "files", "files": []}
		}
	}`
	recordC = `{
		"id": "c",
		"properties": {
			"Post Title": {"type": "title", "title": [{"plain_text": "Clip"}]},
			"Post Date": {"type": "date", "date": {"start": "2024-04-01"}},
			"Media (URLs or leave blank)": {"type": "files", "files": [
				{"name": "clip.mp4", "type": "file", "file": {"url": "https://files.example.com/clip.mp4?sig=1"}}
			]}
		}
	}`
)
