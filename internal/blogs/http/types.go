package http

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/internal/blogs/domain"
)

// Repo is the persistence surface the handlers need. Satisfied by
// repository.Repo; faked in tests.
type Repo interface {
	List(ctx context.Context) ([]domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	Create(ctx context.Context, b domain.Blog) (*domain.Blog, error)
	Update(ctx context.Context, id string, b domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

// Handler bundles the dependencies for blog HTTP endpoints.
type Handler struct {
	repo Repo
	log  *zap.Logger
}

func New(repo Repo, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

type blogRequest struct {
	Title         string     `json:"title" binding:"required,max=100"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content" binding:"required"`
	Excerpt       string     `json:"excerpt" binding:"max=200"`
	Tags          []string   `json:"tags"`
	Image         string     `json:"image"`
	Category      string     `json:"category" binding:"omitempty,oneof=frontend backend devops all"`
	Published     bool       `json:"published"`
	Featured      bool       `json:"featured"`
	PublishedDate *time.Time `json:"publishedDate"`
}

func (req blogRequest) toDomain() domain.Blog {
	b := domain.Blog{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		Image:     req.Image,
		Category:  req.Category,
		Published: req.Published,
		Featured:  req.Featured,
	}
	if req.PublishedDate != nil {
		b.PublishedDate = *req.PublishedDate
	}
	return b
}
