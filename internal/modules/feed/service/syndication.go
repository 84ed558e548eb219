package service

import (
	"fmt"
	"html"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/samber/lo"
)

// Syndicate renders canonical items as a gorilla/feeds feed so the gallery
// can be followed from any RSS or Atom reader.
func Syndicate(databaseID, link string, items []domain.Item) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "Gallery feed",
		Link:        &feeds.Link{Href: link},
		Description: fmt.Sprintf("Media gallery for database %s", databaseID),
		Id:          link,
		Created:     time.Now(),
	}

	feed.Items = lo.Map(items, func(item domain.Item, _ int) *feeds.Item {
		return itemToFeedItem(item)
	})
	if len(feed.Items) > 0 && !feed.Items[0].Created.IsZero() {
		feed.Updated = feed.Items[0].Created
	}
	return feed
}

func itemToFeedItem(item domain.Item) *feeds.Item {
	var content strings.Builder
	for _, m := range item.Media {
		src := html.EscapeString(m.URL)
		if m.Kind == domain.MediaKindVideo {
			fmt.Fprintf(&content, `<video src="%s" controls></video>`, src)
		} else {
			fmt.Fprintf(&content, `<img src="%s" alt="%s"/>`, src, html.EscapeString(item.Title))
		}
	}
	if item.Caption != "" {
		fmt.Fprintf(&content, "<p>%s</p>", html.EscapeString(item.Caption))
	}

	fi := &feeds.Item{
		Id:          item.ID,
		Title:       item.Title,
		Link:        &feeds.Link{},
		Description: item.Caption,
		Content:     content.String(),
	}
	if len(item.Media) > 0 {
		cover := item.Media[0]
		fi.Link.Href = cover.URL
		fi.Enclosure = &feeds.Enclosure{Url: cover.URL, Type: mimeOf(cover), Length: "0"}
	}
	if t, err := parseItemDate(item.Date); err == nil {
		fi.Created = t
	}
	return fi
}

// mimeOf guesses a MIME type from the URL extension, falling back to a
// wildcard of the media kind.
func mimeOf(m domain.Media) string {
	if u, err := url.Parse(m.URL); err == nil {
		if t := mime.TypeByExtension(strings.ToLower(path.Ext(u.Path))); t != "" {
			return t
		}
	}
	return m.Kind.String() + "/*"
}

func parseItemDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
