// Package pagination normalizes the (page, size, sort) triple shared by every
// list endpoint into a bounded, deterministic query description.
package pagination

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
)

// Per-entity page size ceilings. Oversized requests are clamped, not rejected.
const (
	MaxProductPageSize  = 60
	MaxCategoryPageSize = 60
	MaxWishlistPageSize = 10
)

// Request is a validated, normalized paging request.
type Request struct {
	Page      int
	Size      int
	SortField string
	Desc      bool
}

// Normalize validates the raw paging arguments and clamps size to maxSize.
// A negative page or size fails with ErrInvalidPagination; a sort spec that is
// not exactly [field, "asc"|"desc"] (case-insensitive) fails with
// ErrInvalidSortDirection. The direction is case-normalized.
func Normalize(page, size int, sort []string, maxSize int) (Request, error) {
	if page < 0 || size < 0 {
		return Request{}, domainerrors.ErrInvalidPagination
	}

	if len(sort) != 2 {
		return Request{}, domainerrors.ErrInvalidSortDirection
	}

	direction := strings.ToLower(sort[1])
	if direction != "asc" && direction != "desc" {
		return Request{}, domainerrors.ErrInvalidSortDirection
	}

	if size > maxSize {
		size = maxSize
	}

	return Request{
		Page:      page,
		Size:      size,
		SortField: sort[0],
		Desc:      direction == "desc",
	}, nil
}

// Direction renders the normalized sort direction.
func (r Request) Direction() string {
	if r.Desc {
		return "desc"
	}

	return "asc"
}

// Offset returns the row offset of the requested page.
func (r Request) Offset() int {
	return r.Page * r.Size
}
