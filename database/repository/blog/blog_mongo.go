package blogRepo

import (
	"context"
	"fmt"
	"time"

	"inkwell/database"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepository defines data access for blog posts.
type BlogRepository interface {
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id string) error
	GetByID(id string) (*models.BlogPost, error)
	List(limit int64, afterID string) ([]models.BlogPost, error)
}

// MongoBlogRepo implements BlogRepository using MongoDB.
type MongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo creates a new instance of BlogRepository using MongoDB.
func NewMongoBlogRepo() BlogRepository {
	coll := database.Collection("blog_posts")
	repo := &MongoBlogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "published_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a blog post.
func (r *MongoBlogRepo) Create(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	post.PublishedAt = now
	post.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update modifies an existing blog post.
func (r *MongoBlogRepo) Update(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	post.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update blog post with id %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", post.ID)
	}
	return nil
}

// Delete removes a blog post by its ID.
func (r *MongoBlogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a blog post by its unique ID.
func (r *MongoBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blog post with id %s: %w", id, err)
	}
	return &post, nil
}

// List returns blog posts paginated by id, newest first.
func (r *MongoBlogRepo) List(limit int64, afterID string) ([]models.BlogPost, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if afterID != "" {
		filter["id"] = bson.M{"$gt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	for cursor.Next(ctx) {
		var p models.BlogPost
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
