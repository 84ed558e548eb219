//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MediaKind is a presentation hint derived from the media URL
// ENUM(image,video)
type MediaKind string

// MediaHosting tells whether a media URL is stable or expires
// ENUM(stable,time_limited)
type MediaHosting string

// FilterOperator is the representation used to filter a status-like property
// ENUM(status,select)
type FilterOperator string
