// Package paging implements the offset pagination contract shared by every
// list endpoint: 1-indexed pages, page_size clamped to [1,100], items
// ordered newest-first by the caller.
package paging

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request.
type Params struct {
	Page     int `form:"page,default=1" json:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=10" json:"page_size" binding:"omitempty,min=1,max=100"`
}

// Normalize clamps out-of-range values to the defaults so repositories can
// trust Offset/Limit regardless of where the params came from.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

// Page is the list response envelope.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPage builds the envelope, guaranteeing a non-nil items array.
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}
}
