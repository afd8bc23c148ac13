package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ParseJSON decodes a JSON request body into dest. The body is capped at
// 10MB; unknown fields are allowed so older clients with extra fields keep
// working, validation happens downstream in the services.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
