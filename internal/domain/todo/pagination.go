package todo

// DefaultPageSize is the page size a fresh view starts with.
const DefaultPageSize = 10

// Pagination is the view's paging state. TotalItems is only authoritative
// as of the last successful list response.
type Pagination struct {
	PageSize    int
	CurrentPage int
	TotalItems  int
}

// NewPagination returns page 0 with the given size, falling back to
// DefaultPageSize for non-positive values.
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pagination{PageSize: pageSize}
}

// TotalPages is ceil(TotalItems / PageSize), or 0 when there are no items.
func (p Pagination) TotalPages() int {
	if p.TotalItems <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// LastPage is the highest valid zero-based page index. It is 0 when the
// total is unknown or empty.
func (p Pagination) LastPage() int {
	if n := p.TotalPages(); n > 0 {
		return n - 1
	}
	return 0
}

// Clamp bounds page to [0, LastPage()]. With no known items only the lower
// bound applies.
func (p Pagination) Clamp(page int) int {
	if page < 0 {
		return 0
	}
	if p.TotalItems > 0 && page > p.LastPage() {
		return p.LastPage()
	}
	return page
}

// InRange reports whether CurrentPage is valid for the known total.
func (p Pagination) InRange() bool {
	return p.Clamp(p.CurrentPage) == p.CurrentPage
}

// PageRequest selects one page of a listing.
type PageRequest struct {
	Number int
	Size   int
}

// Request returns the page request matching the current state.
func (p Pagination) Request() *PageRequest {
	return &PageRequest{Number: p.CurrentPage, Size: p.PageSize}
}

// ListQuery is everything the remote API accepts when listing todos.
// SortBy is a precomputed composite sort string sent verbatim. A nil Page
// leaves paging to the remote API's defaults.
type ListQuery struct {
	Filter Filter
	SortBy string
	Page   *PageRequest
}

// Page is one page of todos plus the total number of matching records.
type Page struct {
	Todos      []Todo
	TotalItems int
}
