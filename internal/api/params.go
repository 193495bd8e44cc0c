package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"planescheduler/flightline/internal/common"
)

// routeID parses a numeric route parameter. A malformed id behaves like a
// missing resource.
func routeID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", raw, common.ErrNotFound)
	}
	return id, nil
}

func idParam(r *http.Request) (int64, error) {
	return routeID(r, "id")
}
