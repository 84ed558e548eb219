package domain

import (
	"github.com/samber/lo"
)

// WireItem is the JSON shape of an item on GET /feed.
type WireItem struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Caption string   `json:"caption"`
	Date    *string  `json:"date"`
	Status  *string  `json:"status"`
	Images  []string `json:"images"`
}

// FeedResponse is the body of a successful GET /feed.
type FeedResponse struct {
	Items []WireItem `json:"items"`
}

// ToWire converts items for the HTTP response.
func ToWire(items []Item) []WireItem {
	return lo.Map(items, func(i Item, _ int) WireItem {
		return WireItem{
			ID:      i.ID,
			Title:   i.Title,
			Caption: i.Caption,
			Date:    lo.EmptyableToPtr(i.Date),
			Status:  lo.EmptyableToPtr(i.Status),
			Images:  i.URLs(),
		}
	})
}

// FromWire rebuilds items on the consumer side. Hosting is not carried over
// the wire and is left unset; the media kind is re-derived from each URL.
func FromWire(items []WireItem) []Item {
	return lo.Map(items, func(w WireItem, _ int) Item {
		return Item{
			ID:      w.ID,
			Title:   w.Title,
			Caption: w.Caption,
			Date:    lo.FromPtr(w.Date),
			Status:  lo.FromPtr(w.Status),
			Media: lo.Map(w.Images, func(u string, _ int) Media {
				return Media{URL: u, Kind: KindOf(u)}
			}),
		}
	})
}
