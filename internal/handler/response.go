package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/service"
	"github.com/bloggers/bloggers-api/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to responses. Field errors share the
// validation error shape; unknown errors are logged and become an empty 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		validation.WriteErrors(w, model.FieldError{Message: fe.Message, Field: fe.Field})
	case errors.Is(err, service.ErrBlogNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimw.GetReqID(r.Context()),
			"error", err,
		)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// decode reads the validated request body into v. A body the validation
// middleware accepted can still carry a wrongly typed undeclared field.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

// parsePageQuery reads paging and sorting parameters, falling back to the
// defaults for missing or invalid values. sortBy must be one of sortFields.
func parsePageQuery(r *http.Request, sortFields []string) model.PageQuery {
	values := r.URL.Query()

	q := model.PageQuery{
		PageNumber:    min(positiveInt(values.Get("pageNumber"), 1), model.MaxPageNumber),
		PageSize:      min(positiveInt(values.Get("pageSize"), model.DefaultPageSize), model.MaxPageSize),
		SortBy:        model.DefaultSortBy,
		SortDirection: model.SortDesc,
	}
	if sortBy := values.Get("sortBy"); slices.Contains(sortFields, sortBy) {
		q.SortBy = sortBy
	}
	if strings.EqualFold(values.Get("sortDirection"), string(model.SortAsc)) {
		q.SortDirection = model.SortAsc
	}
	return q
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
