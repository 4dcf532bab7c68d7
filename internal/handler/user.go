package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/service"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleList handles GET /users requests.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := model.UserQuery{
		PageQuery:       parsePageQuery(r, model.UserSortFields),
		SearchLoginTerm: values.Get("searchLoginTerm"),
		SearchEmailTerm: values.Get("searchEmailTerm"),
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleCreate handles POST /users requests.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
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

// HandleDelete handles DELETE /users/{id} requests.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
