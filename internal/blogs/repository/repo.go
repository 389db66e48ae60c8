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

	"github.com/amriteshrai/portfolio-backend/internal/blogs/domain"
)

const collection = "blogs"

// Repo provides persistence operations for blog posts.
type Repo struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(collection)}
}

// List returns all blogs, newest publishedDate first.
func (r *Repo) List(ctx context.Context) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	blogs := []domain.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

// Get fetches a blog by its document id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var b domain.Blog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &b, nil
}

// GetBySlug fetches a published blog by its public slug. Unpublished posts
// are not reachable through their slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return &b, nil
}

// Create inserts a new blog, filling schema defaults first. A slug collision
// with an existing document fails with ErrDuplicateSlug.
func (r *Repo) Create(ctx context.Context, b domain.Blog) (*domain.Blog, error) {
	now := time.Now().UTC()
	b.ID = primitive.NilObjectID
	b.ApplyDefaults(now)
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	b.ID = res.InsertedID.(primitive.ObjectID)
	return &b, nil
}

// Update replaces the stored document with the given one, re-applying
// defaults. createdAt is preserved from the stored document.
func (r *Repo) Update(ctx context.Context, id string, b domain.Blog) (*domain.Blog, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b.ID = existing.ID
	b.ApplyDefaults(now)
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = now

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("replace blog: %w", err)
	}
	return &b, nil
}

// Delete removes a blog by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
