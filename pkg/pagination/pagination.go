// Package pagination slices ordered collections into pages
package pagination

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidPageSize is returned for page sizes below one
	ErrInvalidPageSize = errors.New("page size must be at least 1")
	// ErrInvalidPage is returned for page numbers below one
	ErrInvalidPage = errors.New("page must be at least 1")
)

// Page is one slice of an ordered collection. StartIndex and EndIndex are
// zero-based and half-open over the full collection. StartIndex is always
// (Number-1)*Size, saturating at math.MaxInt; EndIndex is clamped to the
// collection, so a page past the end has StartIndex >= EndIndex.
type Page[T any] struct {
	Items      []T  `json:"items" yaml:"items"`
	Number     int  `json:"page" yaml:"page"`
	Size       int  `json:"pageSize" yaml:"page_size"`
	TotalItems int  `json:"totalItems" yaml:"total_items"`
	TotalPages int  `json:"totalPages" yaml:"total_pages"`
	StartIndex int  `json:"startIndex" yaml:"start_index"`
	EndIndex   int  `json:"endIndex" yaml:"end_index"`
	CanGoNext  bool `json:"canGoNext" yaml:"can_go_next"`
	CanGoPrev  bool `json:"canGoPrev" yaml:"can_go_prev"`
}

// Paginate returns page number page (1-based) of items. There is always at
// least one page; a page past the end is empty rather than clamped.
func Paginate[T any](items []T, pageSize, page int) (Page[T], error) {
	if pageSize < 1 {
		return Page[T]{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if page < 1 {
		return Page[T]{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)

	p := Page[T]{
		Number:     page,
		Size:       pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		CanGoNext:  page < totalPages,
		CanGoPrev:  page > 1,
	}

	// compare page numbers first so huge pages cannot overflow the offset
	if page > totalPages {
		p.StartIndex = math.MaxInt
		if page-1 <= math.MaxInt/pageSize {
			p.StartIndex = (page - 1) * pageSize
		}
		p.EndIndex = total
		p.Items = items[total:total:total]
		return p, nil
	}

	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	p.StartIndex = start
	p.EndIndex = end
	p.Items = items[start:end:end]
	return p, nil
}

// TotalPages returns the page count for total items, never less than one
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// Summary describes the page position, e.g. "41–45 of 45"
func (p Page[T]) Summary() string {
	if p.TotalItems == 0 || p.StartIndex >= p.EndIndex {
		return fmt.Sprintf("0 of %d", p.TotalItems)
	}
	return fmt.Sprintf("%d–%d of %d", p.StartIndex+1, p.EndIndex, p.TotalItems)
}
