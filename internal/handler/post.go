package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/service"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

// HandleList handles GET /posts requests.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), model.PostQuery{PageQuery: parsePageQuery(r, model.PostSortFields)})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleCreate handles POST /posts requests.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGet handles GET /posts/{id} requests.
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /posts/{id} requests.
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /posts/{id} requests.
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
