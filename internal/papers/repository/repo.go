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

	"github.com/amriteshrai/portfolio-backend/internal/papers/domain"
)

const collection = "papers"

// Repo provides persistence operations for research papers.
type Repo struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(collection)}
}

// List returns all papers, newest publishedDate first.
func (r *Repo) List(ctx context.Context) ([]domain.Paper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}

	papers := []domain.Paper{}
	if err := cursor.All(ctx, &papers); err != nil {
		return nil, fmt.Errorf("decode papers: %w", err)
	}
	return papers, nil
}

// Get fetches a paper by its document id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Paper, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var p domain.Paper
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get paper: %w", err)
	}
	return &p, nil
}

// GetBySlug fetches a paper by its public slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Paper, error) {
	var p domain.Paper
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get paper by slug: %w", err)
	}
	return &p, nil
}

// Create inserts a new paper, filling schema defaults first. A slug collision
// with an existing document fails with ErrDuplicateSlug.
func (r *Repo) Create(ctx context.Context, p domain.Paper) (*domain.Paper, error) {
	now := time.Now().UTC()
	p.ID = primitive.NilObjectID
	p.ApplyDefaults(now)
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("insert paper: %w", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return &p, nil
}

// Update replaces the stored document with the given one, re-applying
// defaults. createdAt is preserved from the stored document.
func (r *Repo) Update(ctx context.Context, id string, p domain.Paper) (*domain.Paper, error) {
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
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("replace paper: %w", err)
	}
	return &p, nil
}

// Delete removes a paper by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
