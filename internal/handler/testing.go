package handler

import (
	"net/http"

	"github.com/bloggers/bloggers-api/internal/service"
)

// TestingHandler serves the diagnostic data-wipe endpoint.
type TestingHandler struct {
	service *service.TestingService
}

func NewTestingHandler(svc *service.TestingService) *TestingHandler {
	return &TestingHandler{service: svc}
}

// HandleDeleteAll handles DELETE /testing/all-data requests.
func (h *TestingHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
