package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bloggers/bloggers-api/internal/metrics"
	"github.com/bloggers/bloggers-api/internal/model"
)

const maxBodyBytes = 1 << 20 // 1MB

// Body returns middleware that validates the JSON request body against rs.
// On failure it writes 400 with the structured error and stops the chain;
// otherwise the handler receives the normalised body.
func Body(rs RuleSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			// Anything that is not a JSON object reads as a payload with no fields.
			payload := map[string]any{}
			if len(bytes.TrimSpace(raw)) > 0 {
				if err := json.Unmarshal(raw, &payload); err != nil {
					payload = map[string]any{}
				}
			}

			normalized, errs := rs.Apply(payload)
			if len(errs) > 0 {
				for _, fe := range errs {
					metrics.ValidationFailuresTotal.WithLabelValues(rs.Resource, fe.Field).Inc()
				}
				WriteErrors(w, errs...)
				return
			}

			body, err := json.Marshal(normalized)
			if err != nil {
				slog.Error("re-encoding validated body", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))

			next.ServeHTTP(w, r)
		})
	}
}

// WriteErrors writes a 400 response carrying errs in the structured error shape.
func WriteErrors(w http.ResponseWriter, errs ...model.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{ErrorsMessages: errs})
}
