package domain

import (
	"net/url"
	"path"
	"strings"
)

// UntitledTitle is used when a record has no title-like field
const UntitledTitle = "Untitled"

// Item is the canonical, schema-independent view of one database record.
// Items are rebuilt on every fetch; only ID is stable across fetches.
type Item struct {
	ID      string
	Title   string
	Caption string
	Status  string
	Date    string
	Media   []Media
}

// Media is a single slide of an item
type Media struct {
	URL     string
	Hosting MediaHosting
	Kind    MediaKind
}

// URLs returns the media URLs in source order.
func (i Item) URLs() []string {
	urls := make([]string, len(i.Media))
	for n, m := range i.Media {
		urls[n] = m.URL
	}
	return urls
}

// HasVideoCover reports whether the first slide looks like a video.
func (i Item) HasVideoCover() bool {
	return len(i.Media) > 0 && i.Media[0].Kind == MediaKindVideo
}

var videoExtensions = []string{".mp4", ".mov", ".webm"}

// KindOf guesses the media kind from the URL path extension.
func KindOf(rawURL string) MediaKind {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		p = rawURL[:i]
	}

	ext := strings.ToLower(path.Ext(p))
	for _, v := range videoExtensions {
		if ext == v {
			return MediaKindVideo
		}
	}
	return MediaKindImage
}
