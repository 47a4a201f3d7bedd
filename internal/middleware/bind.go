package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"brims/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads one JSON document from the request body into a T. Field
// validation is left to the service layer.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var out T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if err == io.EOF {
			return out, fmt.Errorf("empty body: %w", e.ErrInvalidInput)
		}
		return out, fmt.Errorf("invalid JSON: %v: %w", err, e.ErrInvalidInput)
	}
	return out, nil
}
