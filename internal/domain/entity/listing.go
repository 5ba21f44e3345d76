package entity

// ListingQuery is the value describing one catalog page request.
type ListingQuery struct {
	Search string
	Page   int
	Limit  int
}

// ListingPage is one slice of the catalog. Items never exceeds the
// requested limit; a page past the end carries an empty item list with
// the real TotalPages.
type ListingPage struct {
	Items       []*Product `json:"products"`
	Total       int64      `json:"total"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}
