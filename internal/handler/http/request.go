package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/utils"
)

// bindRequest fills v from the JSON body. A request without a body is bound
// from its query string instead, keyed by the same json names, so that
// clients passing plain query parameters keep working.
func bindRequest(r *http.Request, v any) error {
	err := utils.DecodeJSON(r, v)
	if err == nil {
		return nil
	}
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	query := r.URL.Query()
	fields := make(map[string]string, len(query))
	for key := range query {
		fields[key] = query.Get(key)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return nil
}
