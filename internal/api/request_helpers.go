package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// errInvalidID indicates the {id} path parameter is missing or not a
// positive integer.
var errInvalidID = errors.New("invalid id path parameter")

// parseIDParam extracts and parses the {id} path parameter as an int64.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, errInvalidID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
