package http

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/internal/papers/domain"
)

// Repo is the persistence surface the handlers need. Satisfied by
// repository.Repo; faked in tests.
type Repo interface {
	List(ctx context.Context) ([]domain.Paper, error)
	Get(ctx context.Context, id string) (*domain.Paper, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Paper, error)
	Create(ctx context.Context, p domain.Paper) (*domain.Paper, error)
	Update(ctx context.Context, id string, p domain.Paper) (*domain.Paper, error)
	Delete(ctx context.Context, id string) error
}

// Handler bundles the dependencies for research paper HTTP endpoints.
type Handler struct {
	repo Repo
	log  *zap.Logger
}

func New(repo Repo, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

type paperRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	PdfURL        string     `json:"pdfUrl" binding:"required"`
	Slug          string     `json:"slug"`
	Image         string     `json:"image"`
	Tags          []string   `json:"tags"`
	Category      string     `json:"category" binding:"omitempty,oneof=ai-ml nlp computer-vision"`
	Featured      bool       `json:"featured"`
	PublishedDate *time.Time `json:"publishedDate"`
}

func (req paperRequest) toDomain() domain.Paper {
	p := domain.Paper{
		Title:       req.Title,
		Description: req.Description,
		PdfURL:      req.PdfURL,
		Slug:        req.Slug,
		Image:       req.Image,
		Tags:        req.Tags,
		Category:    req.Category,
		Featured:    req.Featured,
	}
	if req.PublishedDate != nil {
		p.PublishedDate = *req.PublishedDate
	}
	return p
}
