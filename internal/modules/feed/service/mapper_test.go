package service

import (
	"testing"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
)

const mediaField = "Media (URLs or leave blank)"

func TestMapFullRecord(t *testing.T) {
	m := NewItemMapper(domain.DefaultSchema())
	item := m.Map(record(t, recordA), mediaField)

	if item.ID != "a" {
		t.Errorf("ID = %q", item.ID)
	}
	if item.Title != "Sunset" {
		t.Errorf("Title = %q, want Sunset", item.Title)
	}
	if item.Caption != "golden hour" {
		t.Errorf("Caption = %q", item.Caption)
	}
	if item.Status != "Approved" {
		t.Errorf("Status = %q", item.Status)
	}
	if item.Date != "2024-05-02" {
		t.Errorf("Date = %q", item.Date)
	}
	if len(item.Media) != 2 {
		t.Fatalf("expected 2 media, got %d", len(item.Media))
	}
	if item.Media[0].Hosting != domain.MediaHostingStable || item.Media[0].URL != "https://cdn.example.com/one.jpg" {
		t.Errorf("first media = %+v", item.Media[0])
	}
	if item.Media[1].Hosting != domain.MediaHostingTimeLimited {
		t.Errorf("second media should be time limited, got %s", item.Media[1].Hosting)
	}
	if item.Media[1].Kind != domain.MediaKindImage {
		t.Errorf("second media kind = %s", item.Media[1].Kind)
	}
}

func TestMapDefaults(t *testing.T) {
	m := NewItemMapper(domain.DefaultSchema())
	item := m.Map(record(t, `{"id": "x", "properties": {}}`), mediaField)

	if item.Title != domain.UntitledTitle {
		t.Errorf("Title = %q, want %q", item.Title, domain.UntitledTitle)
	}
	if item.Caption != "" || item.Status != "" || item.Date != "" {
		t.Errorf("expected empty optional fields, got %+v", item)
	}
	if len(item.Media) != 0 {
		t.Errorf("expected no media, got %d", len(item.Media))
	}
}

func TestMapMalformedFields(t *testing.T) {
	raw := `{
		"id": "x",
		"properties": {
			"Post Title": {"type": "title", "title": "not an array"},
			"Name": {"type": "title", "title": [{"plain_text": "Fallback name"}]},
			"Caption": 42,
			"Post Date": {"type": "date", "date": null},
			"Media (URLs or leave blank)": {"type": "files", "files": [
				{"name": "broken", "type": "external"},
				{"name": "ok", "type": "external", "external": {"url": "https://x.test/ok.webm"}}
			]}
		}
	}`
	m := NewItemMapper(domain.DefaultSchema())
	item := m.Map(record(t, raw), mediaField)

	if item.Title != "Fallback name" {
		t.Errorf("Title = %q, want Fallback name", item.Title)
	}
	if item.Caption != "" {
		t.Errorf("Caption = %q, want empty", item.Caption)
	}
	if item.Date != "" {
		t.Errorf("Date = %q, want empty", item.Date)
	}
	if len(item.Media) != 1 || item.Media[0].Kind != domain.MediaKindVideo {
		t.Errorf("expected one video, got %+v", item.Media)
	}
}

func TestMapStatusRepresentations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"modern status", `{"id": "x", "properties": {"Status": {"type": "status", "status": {"name": "Done"}}}}`, "Done"},
		{"legacy select", `{"id": "x", "properties": {"Status": {"type": "select", "select": {"name": "Draft"}}}}`, "Draft"},
		{"empty select", `{"id": "x", "properties": {"Status": {"type": "select", "select": null}}}`, ""},
		{"absent", `{"id": "x", "properties": {}}`, ""},
	}

	m := NewItemMapper(domain.DefaultSchema())
	for _, tt := range tests {
		if got := m.Map(record(t, tt.raw), mediaField).Status; got != tt.want {
			t.Errorf("%s: Status = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMapMissingMediaFieldIsExcluded(t *testing.T) {
	withMedia := record(t, recordA)
	without := record(t, `{"id": "x", "properties": {"Post Title": {"type": "title", "title": [{"plain_text": "No media"}]}}}`)

	m := NewItemMapper(domain.DefaultSchema())
	kept := 0
	for _, r := range []domain.Record{withMedia, without} {
		if len(m.Map(r, mediaField).Media) > 0 {
			kept++
		}
	}
	if kept != 1 {
		t.Errorf("expected exactly one record with media, got %d", kept)
	}
}

func TestMapWrongMediaType(t *testing.T) {
	raw := `{"id": "x", "properties": {"Media": {"type": "rich_text", "rich_text": [{"plain_text": "https://x.test/a.jpg"}]}}}`
	m := NewItemMapper(domain.DefaultSchema())
	if got := m.Map(record(t, raw), "Media").Media; len(got) != 0 {
		t.Errorf("expected no media from a non-files property, got %+v", got)
	}
}

func TestMapSkipsBrokenFileEntries(t *testing.T) {
	raw := `{"id": "x", "properties": {"Media (URLs or leave blank)": {"type": "files", "files": [
		{"type": "external", "external": {"url": "https://cdn.example.com/a.jpg"}},
		{"type": "file", "file": "broken"},
		42,
		{"type": "file", "file": {"url": ""}}
	]}}}`

	item := NewItemMapper(domain.DefaultSchema()).Map(record(t, raw), mediaField)
	if len(item.Media) != 1 || item.Media[0].URL != "https://cdn.example.com/a.jpg" {
		t.Errorf("expected only the good entry, got %+v", item.Media)
	}
}
