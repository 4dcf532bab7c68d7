package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/service"
)

// BlogHandler handles HTTP requests for blogs and their nested posts.
type BlogHandler struct {
	blogs *service.BlogService
	posts *service.PostService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogs *service.BlogService, posts *service.PostService) *BlogHandler {
	return &BlogHandler{blogs: blogs, posts: posts}
}

// HandleList handles GET /blogs requests.
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := model.BlogQuery{
		PageQuery:      parsePageQuery(r, model.BlogSortFields),
		SearchNameTerm: r.URL.Query().Get("searchNameTerm"),
	}

	page, err := h.blogs.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleCreate handles POST /blogs requests.
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.BlogRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.blogs.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGet handles GET /blogs/{id} requests.
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.blogs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /blogs/{id} requests.
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.BlogRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.blogs.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /blogs/{id} requests.
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListPosts handles GET /blogs/{id}/posts requests.
func (h *BlogHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	q := model.PostQuery{PageQuery: parsePageQuery(r, model.PostSortFields)}

	page, err := h.posts.ListForBlog(r.Context(), chi.URLParam(r, "id"), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleCreatePost handles POST /blogs/{id}/posts requests.
func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.posts.CreateForBlog(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
