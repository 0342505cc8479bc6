package dto

// DateLayout is the calendar-date format used across the API. Postings carry
// no time-of-day significance.
const DateLayout = "2006-01-02"

// PagedResponse is the envelope returned by every list endpoint.
type PagedResponse struct {
	Data         any   `json:"data"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}
