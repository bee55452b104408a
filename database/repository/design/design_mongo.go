package designRepo

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

// DesignRepository defines data access for generated design records.
type DesignRepository interface {
	Create(d *models.Design) error
	GetByID(id string) (*models.Design, error)
	ListByUser(userID string, limit int64, afterID string) ([]models.Design, error)
	Delete(id string) error
}

// MongoDesignRepo implements DesignRepository using MongoDB.
type MongoDesignRepo struct {
	coll *mongo.Collection
}

// NewMongoDesignRepo creates a new instance of DesignRepository using MongoDB.
func NewMongoDesignRepo() DesignRepository {
	coll := database.Collection("designs")
	repo := &MongoDesignRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDesignRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a design record.
func (r *MongoDesignRepo) Create(d *models.Design) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	d.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create design: %w", err)
	}
	return nil
}

// GetByID retrieves a design by its unique ID.
func (r *MongoDesignRepo) GetByID(id string) (*models.Design, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var d models.Design
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch design with id %s: %w", id, err)
	}
	return &d, nil
}

// ListByUser returns a user's designs, paginated by id.
func (r *MongoDesignRepo) ListByUser(userID string, limit int64, afterID string) ([]models.Design, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if afterID != "" {
		filter["id"] = bson.M{"$gt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Design
	for cursor.Next(ctx) {
		var d models.Design
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode design: %w", err)
		}
		items = append(items, d)
	}
	return items, nil
}

// Delete removes a design record by its ID.
func (r *MongoDesignRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete design with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("design with id %s not found", id)
	}
	return nil
}
