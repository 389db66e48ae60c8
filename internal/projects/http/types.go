package http

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/internal/projects/domain"
)

// Repo is the persistence surface the handlers need. Satisfied by
// repository.Repo; faked in tests.
type Repo interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo Repo
	log  *zap.Logger
}

func New(repo Repo, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

type projectRequest struct {
	Title         string     `json:"title" binding:"required,max=100"`
	Description   string     `json:"description" binding:"required"`
	TechStack     []string   `json:"techStack" binding:"required,min=1"`
	GithubLink    string     `json:"githubLink"`
	DemoLink      string     `json:"demoLink"`
	VideoURL      string     `json:"videoUrl"`
	Thumbnail     string     `json:"thumbnail"`
	Status        string     `json:"status" binding:"omitempty,oneof=building operational maintenance"`
	Featured      bool       `json:"featured"`
	PublishedDate *time.Time `json:"publishedDate"`
}

func (req projectRequest) toDomain() domain.Project {
	p := domain.Project{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubLink:  req.GithubLink,
		DemoLink:    req.DemoLink,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Status:      req.Status,
		Featured:    req.Featured,
	}
	if req.PublishedDate != nil {
		p.PublishedDate = *req.PublishedDate
	}
	return p
}
