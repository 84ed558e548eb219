package domain

// Schema lists, per canonical field, the property names a deployment may use,
// most specific first.
type Schema struct {
	Title   []string
	Caption []string
	Status  []string
	Date    []string
	Media   []string
}

// DefaultSchema returns the property names used by the stock gallery template
// followed by common variants.
func DefaultSchema() Schema {
	return Schema{
		Title:   []string{"Post Title", "Title", "Name"},
		Caption: []string{"Caption", "Description"},
		Status:  []string{"Status"},
		Date:    []string{"Post Date", "Date", "Publish Date"},
		Media:   []string{"Media (URLs or leave blank)", "Media", "Images", "Files & media"},
	}
}

// SortProperty is the property the feed is ordered by.
func (s Schema) SortProperty() string {
	return first(s.Date)
}

// StatusProperty is the property status filters apply to.
func (s Schema) StatusProperty() string {
	return first(s.Status)
}

func first(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
