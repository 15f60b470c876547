// Package paginate computes page windows and navigation controls over an
// already ranked slice. It knows nothing about rendering.
package paginate

// DefaultPageSize is the number of items per page on the search page.
const DefaultPageSize = 10

// ControlKind identifies one element of the pagination bar.
type ControlKind string

const (
	Previous ControlKind = "previous"
	Number   ControlKind = "page"
	Current  ControlKind = "current"
	Ellipsis ControlKind = "ellipsis"
	Next     ControlKind = "next"
)

// Control is one element of the pagination bar. Page is the navigation target
// for Previous, Number and Next, the page itself for Current, and zero for
// Ellipsis.
type Control struct {
	Kind ControlKind `json:"kind"`
	Page int         `json:"page,omitempty"`
}

// Link reports whether the control navigates somewhere.
func (c Control) Link() bool {
	return c.Kind == Previous || c.Kind == Number || c.Kind == Next
}

// Mode selects which page numbers appear in the bar.
type Mode int

const (
	// Windowed shows the first, last and current±2 pages with ellipses at current±3.
	Windowed Mode = iota
	// Full shows every page number.
	Full
)

// Window is one page of items plus the data needed to render its controls.
type Window[T any] struct {
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Items      []T       `json:"items"`
	Controls   []Control `json:"controls"`
}

// Empty reports whether the window has no items at all.
func (w Window[T]) Empty() bool { return w.TotalItems == 0 }

// HasPrevious reports whether a previous page exists.
func (w Window[T]) HasPrevious() bool { return w.Page > 1 }

// HasNext reports whether a next page exists.
func (w Window[T]) HasNext() bool { return w.Page < w.TotalPages }

// Paginate returns page (1-indexed) of items using the windowed control layout.
func Paginate[T any](items []T, page, pageSize int) Window[T] {
	return PaginateMode(items, page, pageSize, Windowed)
}

// PaginateMode is Paginate with an explicit control layout. A non-positive
// pageSize falls back to DefaultPageSize; page is clamped to [1, TotalPages].
func PaginateMode[T any](items []T, page, pageSize int, mode Mode) Window[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = Clamp(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Window[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
		Items:      items[start:end:end],
		Controls:   Controls(page, totalPages, mode),
	}
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Controls builds the pagination bar for current out of totalPages.
//
// In Windowed mode page i is shown when it is the first page, the last page,
// or within 2 of current. An ellipsis is emitted only at exactly current-3 and
// current+3 when that position is not itself shown; other skipped pages leave
// no marker.
func Controls(current, totalPages int, mode Mode) []Control {
	var out []Control

	if current > 1 {
		out = append(out, Control{Kind: Previous, Page: current - 1})
	}

	for i := 1; i <= totalPages; i++ {
		shown := mode == Full || i == 1 || i == totalPages || (i >= current-2 && i <= current+2)
		switch {
		case shown && i == current:
			out = append(out, Control{Kind: Current, Page: i})
		case shown:
			out = append(out, Control{Kind: Number, Page: i})
		case i == current-3 || i == current+3:
			out = append(out, Control{Kind: Ellipsis})
		}
	}

	if current < totalPages {
		out = append(out, Control{Kind: Next, Page: current + 1})
	}

	return out
}
