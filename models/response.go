package models

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Succeeded bool        `json:"succeeded"`
	Message   string      `json:"message"`
	Error     string      `json:"error,omitempty"`
}

// PagedUsers is the paginated shape of the user directory listings.
type PagedUsers struct {
	Users       []User `json:"users"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int64  `json:"currentPage"`
	TotalCount  int64  `json:"totalCount"`
}

// PagedLeaves is the paginated shape of the leave listings.
type PagedLeaves struct {
	Leaves      []LeaveWithUser `json:"leaves"`
	TotalPages  int64           `json:"totalPages"`
	CurrentPage int64           `json:"currentPage"`
	TotalCount  int64           `json:"totalCount"`
}

// TotalPages derives the page count for a paginated listing.
func TotalPages(totalCount, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := totalCount / limit
	if totalCount%limit != 0 {
		pages++
	}
	return pages
}
