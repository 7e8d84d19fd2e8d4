package model

// Page is the paginated envelope returned by every list endpoint.
// Number is the zero-based index of the current page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Normalize replaces an absent content array with an empty slice so
// callers never have to distinguish nil from empty.
func (p *Page[T]) Normalize() {
	if p.Content == nil {
		p.Content = make([]T, 0)
	}
}
