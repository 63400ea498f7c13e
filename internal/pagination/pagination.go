// Package pagination slices ordered result sets into fixed-size,
// 1-indexed pages. Out-of-range page numbers clamp to the nearest valid
// page instead of erroring, matching the reference paginator used by
// every listing view.
package pagination

// DefaultPageSize is shared by all listing views.
const DefaultPageSize = 10

// Page is a bounded window over an ordered collection.
type Page struct {
	Number   int
	Size     int
	Total    int64
	NumPages int
	Offset   int
	Limit    int
}

// New computes the window for the requested page over a collection of
// `total` items. Page numbers below 1 clamp to the first page; numbers
// beyond the last clamp to the last. An empty collection has exactly
// one empty page.
func New(total int64, number, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	offset := (number - 1) * size
	limit := size
	if remaining := total - int64(offset); remaining < int64(limit) {
		if remaining < 0 {
			remaining = 0
		}
		limit = int(remaining)
	}

	return Page{
		Number:   number,
		Size:     size,
		Total:    total,
		NumPages: numPages,
		Offset:   offset,
		Limit:    limit,
	}
}

func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) HasNext() bool { return p.Number < p.NumPages }

func (p Page) PrevNumber() int { return p.Number - 1 }

func (p Page) NextNumber() int { return p.Number + 1 }
