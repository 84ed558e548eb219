package domain

import "github.com/samber/lo"

const (
	DefaultColumns = 3
	MaxColumns     = 6
)

// Query selects the feed a gallery shows
type Query struct {
	DatabaseID string
	Status     string
	Limit      int
}

// Layout holds grid presentation settings
type Layout struct {
	Columns int
}

// NewLayout bounds the column count to [1, MaxColumns]; 0 selects the default.
func NewLayout(columns int) Layout {
	if columns == 0 {
		columns = DefaultColumns
	}
	return Layout{Columns: lo.Clamp(columns, 1, MaxColumns)}
}
