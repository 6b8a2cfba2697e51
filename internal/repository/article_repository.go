package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pdf-tools-server/internal/domain"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

const articlesTable = "articles"

// SupabaseArticleRepository persists blog articles in the Supabase `articles` table.
type SupabaseArticleRepository struct {
	supabase *SupabaseClient
	logger   domain.Logger
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(supabase *SupabaseClient, logger domain.Logger) domain.ArticleRepository {
	return &SupabaseArticleRepository{
		supabase: supabase,
		logger:   logger,
	}
}

// List returns all articles, newest first.
func (r *SupabaseArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	client := r.supabase.GetSupabaseClient()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From(articlesTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	var articles []*domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal articles: %w", err)
	}
	if articles == nil {
		articles = make([]*domain.Article, 0)
	}
	return articles, nil
}

// GetBySlug returns the article published under the given slug.
func (r *SupabaseArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	client := r.supabase.GetSupabaseClient()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From(articlesTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	var articles []*domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal article: %w", err)
	}
	if len(articles) == 0 {
		return nil, domain.ErrArticleNotFound
	}
	return articles[0], nil
}

// Create inserts a new article. The slug must not already be taken.
func (r *SupabaseArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	client := r.supabase.GetSupabaseClient()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	// Slug is the public lookup key; reject duplicates up front rather than
	// relying on a DB constraint that may not exist.
	if _, err := r.GetBySlug(ctx, article.Slug); err == nil {
		return nil, domain.ErrSlugAlreadyExists
	} else if err != domain.ErrArticleNotFound {
		return nil, err
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	row := map[string]interface{}{
		"id":          article.ID,
		"title":       article.Title,
		"slug":        article.Slug,
		"description": article.Description,
		"content":     article.Content,
		"thumbnail":   article.Thumbnail,
		"graphic":     article.Graphic,
	}

	data, _, err := client.From(articlesTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	var inserted []*domain.Article
	if err := json.Unmarshal(data, &inserted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created article: %w", err)
	}
	if len(inserted) == 0 {
		return article, nil
	}
	return inserted[0], nil
}

// Update mutates an existing article by id.
func (r *SupabaseArticleRepository) Update(ctx context.Context, id string, article *domain.Article) (*domain.Article, error) {
	client := r.supabase.GetSupabaseClient()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"title":       article.Title,
		"slug":        article.Slug,
		"description": article.Description,
		"content":     article.Content,
		"thumbnail":   article.Thumbnail,
		"graphic":     article.Graphic,
	}

	data, _, err := client.From(articlesTable).
		Update(row, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	var updated []*domain.Article
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated article: %w", err)
	}
	if len(updated) == 0 {
		return nil, domain.ErrArticleNotFound
	}
	return updated[0], nil
}

// Delete removes an article by id.
func (r *SupabaseArticleRepository) Delete(ctx context.Context, id string) error {
	client := r.supabase.GetSupabaseClient()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From(articlesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}
