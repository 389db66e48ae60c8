package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amriteshrai/portfolio-backend/internal/projects/domain"
)

const collection = "projects"

// Repo provides persistence operations for projects.
type Repo struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(collection)}
}

// List returns all projects, newest publishedDate first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// Get fetches a project by its document id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var p domain.Project
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Create inserts a new project, filling schema defaults first.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NilObjectID
	p.ApplyDefaults(now)
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return &p, nil
}

// Update replaces the stored document with the given one, re-applying
// defaults. createdAt is preserved from the stored document.
func (r *Repo) Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = existing.ID
	p.ApplyDefaults(now)
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = now

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, p); err != nil {
		return nil, fmt.Errorf("replace project: %w", err)
	}
	return &p, nil
}

// Delete removes a project by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
