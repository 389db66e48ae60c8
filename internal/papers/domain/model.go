package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amriteshrai/portfolio-backend/internal/slugify"
)

// Research paper categories.
const (
	CategoryAIML           = "ai-ml"
	CategoryNLP            = "nlp"
	CategoryComputerVision = "computer-vision"
)

// Paper is a research paper document, published under /research/{slug}.
type Paper struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	PdfURL        string             `bson:"pdfUrl" json:"pdfUrl"`
	Slug          string             `bson:"slug" json:"slug"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Tags          []string           `bson:"tags" json:"tags"`
	Category      string             `bson:"category" json:"category"`
	Featured      bool               `bson:"featured" json:"featured"`
	PublishedDate time.Time          `bson:"publishedDate" json:"publishedDate"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyDefaults fills the schema defaults on a paper about to be persisted.
func (p *Paper) ApplyDefaults(now time.Time) {
	if p.Slug == "" {
		p.Slug = slugify.Slugify(p.Title)
	}
	if p.Category == "" {
		p.Category = CategoryAIML
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.PublishedDate.IsZero() {
		p.PublishedDate = now
	}
}
