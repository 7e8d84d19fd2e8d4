// Package testutil provides building blocks for the fake backends the
// client tests talk to: a bearer-checking middleware, JSON response
// helpers, and an in-memory paginator producing the envelope every
// list endpoint returns.
package testutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/candidatrack/candidatrack-go/internal/model"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse builds the backend's error envelope.
func ErrorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// RequireBearer returns middleware that rejects requests whose
// Authorization header is not exactly "Bearer <token>" with a 401, the
// way the real backend does.
func RequireBearer(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			got, found := strings.CutPrefix(header, "Bearer ")
			if !found || got != token {
				WriteJSON(w, http.StatusUnauthorized, ErrorResponse("invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PageParams reads the page and size query parameters, falling back to
// page 0 and size 10.
func PageParams(r *http.Request) (page, size int) {
	page, size = 0, 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}
	return page, size
}

// Paginate slices items into the envelope for the requested page. Pages
// past the end return empty content with the totals intact, never an
// error.
func Paginate[T any](items []T, page, size int) model.Page[T] {
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	start := page * size
	content := []T{}
	if start < total {
		end := start + size
		if end > total {
			end = total
		}
		content = items[start:end]
	}

	return model.Page[T]{
		Content:       content,
		TotalElements: int64(total),
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
