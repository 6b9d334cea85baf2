// Package query holds list filtering primitives shared by
// repositories.
package query

// PageFilter is a page/size pair normalized for SQL offset queries.
type PageFilter struct {
	Page     int
	PageSize int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Offset returns the row offset for the page, treating page numbers
// below 1 as the first page.
func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the page size clamped to [1, maxPageSize], falling
// back to the default when unset.
func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return defaultPageSize
	}
	if f.PageSize > maxPageSize {
		return maxPageSize
	}
	return f.PageSize
}
