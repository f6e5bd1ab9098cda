package domain

// ListArgs enumerates every recognized argument of a catalog listing.
// Nil means "no constraint".
type ListArgs struct {
	Category *string
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	SortBy   *string
	Skip     *int64
	Limit    *int64
}

// Plan is the filter/sort/pagination handed to the catalog store. The store
// interprets it in its own query dialect; the plan itself is dialect-free.
type Plan struct {
	Category *string
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string // ascending; empty means insertion order
	Skip     int64
	Limit    int64 // 0 means no cap
}
