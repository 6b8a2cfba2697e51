package handler

import (
	"encoding/json"
	"net/http"

	"pdf-tools-server/internal/domain"

	"github.com/gorilla/mux"
)

// ArticleHandler serves the blog content endpoints. Reads are public,
// mutations sit behind the session middleware.
type ArticleHandler struct {
	articles domain.ArticleRepository
	logger   domain.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles domain.ArticleRepository, logger domain.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		logger:   logger,
	}
}

// List handles GET /api/articles
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list articles", err)
		writeError(w, http.StatusInternalServerError, "Failed to load articles")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// GetBySlug handles GET /api/articles/{slug}
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == domain.ErrArticleNotFound {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		h.logger.Error("Failed to get article", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "Failed to load article")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := article.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.articles.Create(r.Context(), &article)
	if err != nil {
		if err == domain.ErrSlugAlreadyExists {
			writeError(w, http.StatusConflict, "An article with this slug already exists")
			return
		}
		h.logger.Error("Failed to create article", err, "slug", article.Slug)
		writeError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/articles/{id}
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.articles.Update(r.Context(), id, &article)
	if err != nil {
		if err == domain.ErrArticleNotFound {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		h.logger.Error("Failed to update article", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/articles/{id}
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.articles.Delete(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete article", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"error": false, "message": "Article deleted"})
}
