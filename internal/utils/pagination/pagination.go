// Package pagination holds the page-number arithmetic shared by the list
// endpoints, which all speak the {data, totalRecords, totalPages,
// currentPage} envelope.
package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Params is a normalized page request.
type Params struct {
	Page     int // 1-based
	PageSize int
}

// Normalize clamps raw query values into a usable Params.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the SQL offset for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns the page count for a record total, never less than 1 so
// an empty listing still reports page 1 of 1.
func TotalPages(totalRecords int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := int((totalRecords + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}
