package domain

// Article is a blog post stored in the Supabase `articles` table.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Graphic     string `json:"graphic,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Validate checks the fields required to publish an article.
func (a *Article) Validate() error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if a.Slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if a.Content == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	return nil
}
