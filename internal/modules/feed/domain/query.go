package domain

// Query is a bounded, sorted, optionally filtered read of one database
type Query struct {
	DatabaseID string
	PageSize   int
	SortBy     string
	Filter     *Filter
}

// Filter matches records whose status-like property equals a label
type Filter struct {
	Property string
	Operator FilterOperator
	Equals   string
}
