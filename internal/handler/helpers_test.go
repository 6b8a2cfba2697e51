package handler

import (
	"context"

	"pdf-tools-server/internal/domain"
)

// testLogger discards all output; handler tests assert on responses, not logs.
type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{}) {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{}) {}
func (testLogger) Warn(msg string, fields ...interface{}) {}

type mockToolService struct {
	result *domain.ToolResult
	err    error
	calls  int
	lastOp string
	body   map[string]interface{}
}

func (m *mockToolService) Execute(ctx context.Context, operation string, body map[string]interface{}) (*domain.ToolResult, error) {
	m.calls++
	m.lastOp = operation
	m.body = body
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockToolService) Operations() []string {
	return []string{"compresspdf"}
}

type mockJobService struct {
	submission *domain.JobSubmission
	status     *domain.JobStatus
	err        error
	lastJobID  string
	lastURL    string
}

func (m *mockJobService) Submit(ctx context.Context, url string) (*domain.JobSubmission, error) {
	m.lastURL = url
	if m.err != nil {
		return nil, m.err
	}
	return m.submission, nil
}

func (m *mockJobService) Poll(ctx context.Context, jobID string, originalURL string) (*domain.JobStatus, error) {
	m.lastJobID = jobID
	m.lastURL = originalURL
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

type mockSessionService struct {
	token   string
	session *domain.Session
	err     error
}

func (m *mockSessionService) Issue(user *domain.SupabaseUser) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func (m *mockSessionService) Verify(token string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

type mockSupabaseClient struct {
	user      *domain.SupabaseUser
	err       error
	validated int
}

func (m *mockSupabaseClient) Initialize() error { return nil }

func (m *mockSupabaseClient) ValidateToken(token string) (*domain.SupabaseUser, error) {
	m.validated++
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

type mockArticleRepository struct {
	articles map[string]*domain.Article
	err      error
}

func newMockArticleRepository() *mockArticleRepository {
	return &mockArticleRepository{articles: make(map[string]*domain.Article)}
}

func (m *mockArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	articles := make([]*domain.Article, 0, len(m.articles))
	for _, a := range m.articles {
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *mockArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (m *mockArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.articles {
		if a.Slug == article.Slug {
			return nil, domain.ErrSlugAlreadyExists
		}
	}
	if article.ID == "" {
		article.ID = "article-1"
	}
	m.articles[article.ID] = article
	return article, nil
}

func (m *mockArticleRepository) Update(ctx context.Context, id string, article *domain.Article) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	existing, ok := m.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	existing.Title = article.Title
	existing.Content = article.Content
	return existing, nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.articles, id)
	return nil
}
