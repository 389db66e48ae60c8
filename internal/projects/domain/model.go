package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project lifecycle states shown on the public cards.
const (
	StatusBuilding    = "building"
	StatusOperational = "operational"
	StatusMaintenance = "maintenance"
)

// Project is a portfolio project document. Projects carry no slug; they are
// addressed by document id only.
type Project struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	TechStack     []string           `bson:"techStack" json:"techStack"`
	GithubLink    string             `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	DemoLink      string             `bson:"demoLink,omitempty" json:"demoLink,omitempty"`
	VideoURL      string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Thumbnail     string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Featured      bool               `bson:"featured" json:"featured"`
	PublishedDate time.Time          `bson:"publishedDate" json:"publishedDate"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyDefaults fills the schema defaults on a project about to be persisted.
func (p *Project) ApplyDefaults(now time.Time) {
	if p.Status == "" {
		p.Status = StatusBuilding
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.PublishedDate.IsZero() {
		p.PublishedDate = now
	}
}
