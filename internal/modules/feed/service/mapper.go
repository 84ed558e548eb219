package service

import (
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/samber/lo"
)

// extractor reads a string out of a property, reporting whether the
// property had the expected shape and a non-empty value.
type extractor func(domain.Property) (string, bool)

// candidate is one (property name, shape) pair a field may be read from.
type candidate struct {
	Property string
	Extract  extractor
}

func titleText(p domain.Property) (string, bool) {
	if s := domain.Text(p.Title); s != "" {
		return s, true
	}
	s := domain.Text(p.RichText)
	return s, s != ""
}

func richText(p domain.Property) (string, bool) {
	s := domain.Text(p.RichText)
	return s, s != ""
}

func statusName(p domain.Property) (string, bool) {
	if p.Status == nil || p.Status.Name == "" {
		return "", false
	}
	return p.Status.Name, true
}

func selectName(p domain.Property) (string, bool) {
	if p.Select == nil || p.Select.Name == "" {
		return "", false
	}
	return p.Select.Name, true
}

func dateStart(p domain.Property) (string, bool) {
	if p.Date == nil || p.Date.Start == "" {
		return "", false
	}
	return p.Date.Start, true
}

func candidates(names []string, extractors ...extractor) []candidate {
	var out []candidate
	for _, ex := range extractors {
		for _, name := range names {
			out = append(out, candidate{Property: name, Extract: ex})
		}
	}
	return out
}

// resolve returns the first value produced by the candidates, in order.
func resolve(r domain.Record, list []candidate) (string, bool) {
	for _, c := range list {
		p, ok := r.Property(c.Property)
		if !ok {
			continue
		}
		if v, ok := c.Extract(p); ok {
			return v, true
		}
	}
	return "", false
}

// fileResolvers pick a URL from a files entry: the stable external URL first,
// then the source-hosted signed URL.
var fileResolvers = []func(domain.File) (domain.Media, bool){
	func(f domain.File) (domain.Media, bool) {
		if (f.Type != "external" && f.Type != "") || f.External == nil || f.External.URL == "" {
			return domain.Media{}, false
		}
		return domain.Media{URL: f.External.URL, Hosting: domain.MediaHostingStable}, true
	},
	func(f domain.File) (domain.Media, bool) {
		if (f.Type != "file" && f.Type != "") || f.File == nil || f.File.URL == "" {
			return domain.Media{}, false
		}
		return domain.Media{URL: f.File.URL, Hosting: domain.MediaHostingTimeLimited}, true
	},
}

// ItemMapper converts raw records into canonical items
type ItemMapper struct {
	title   []candidate
	caption []candidate
	status  []candidate
	date    []candidate
}

// NewItemMapper builds the candidate lists for a schema
func NewItemMapper(schema domain.Schema) *ItemMapper {
	return &ItemMapper{
		title:   candidates(schema.Title, titleText),
		caption: candidates(schema.Caption, richText),
		status:  candidates(schema.Status, statusName, selectName),
		date:    candidates(schema.Date, dateStart),
	}
}

// Map converts one record. It never fails: missing or malformed fields fall
// back to their defaults, and a record without media yields an item with no
// media for the caller to drop.
func (m *ItemMapper) Map(r domain.Record, mediaField string) domain.Item {
	title, ok := resolve(r, m.title)
	if !ok {
		title = domain.UntitledTitle
	}
	caption, _ := resolve(r, m.caption)
	status, _ := resolve(r, m.status)
	date, _ := resolve(r, m.date)

	return domain.Item{
		ID:      r.ID,
		Title:   title,
		Caption: caption,
		Status:  status,
		Date:    date,
		Media:   mediaOf(r, mediaField),
	}
}

func mediaOf(r domain.Record, field string) []domain.Media {
	p, ok := r.Property(field)
	if !ok || (p.Type != "" && p.Type != "files") {
		return nil
	}

	return lo.FilterMap(p.Files, func(f domain.File, _ int) (domain.Media, bool) {
		for _, res := range fileResolvers {
			if m, ok := res(f); ok {
				m.Kind = domain.KindOf(m.URL)
				return m, true
			}
		}
		return domain.Media{}, false
	})
}
