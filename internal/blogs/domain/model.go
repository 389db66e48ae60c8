package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amriteshrai/portfolio-backend/internal/slugify"
)

// Blog categories as rendered by the public listing filter.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDevops   = "devops"
	CategoryAll      = "all"
)

// Blog is a single post document. It is intentionally storage-agnostic and
// used across repository and HTTP layers; bson/json keys follow the
// collection schema.
type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Content       string             `bson:"content" json:"content"`
	Excerpt       string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Tags          []string           `bson:"tags" json:"tags"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Published     bool               `bson:"published" json:"published"`
	Featured      bool               `bson:"featured" json:"featured"`
	PublishedDate time.Time          `bson:"publishedDate" json:"publishedDate"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyDefaults fills the schema defaults on a blog about to be persisted:
// slug derived from the title when absent, category "frontend", empty tag
// list, publishedDate now.
func (b *Blog) ApplyDefaults(now time.Time) {
	if b.Slug == "" {
		b.Slug = slugify.Slugify(b.Title)
	}
	if b.Category == "" {
		b.Category = CategoryFrontend
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.PublishedDate.IsZero() {
		b.PublishedDate = now
	}
}
