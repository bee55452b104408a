package creditRepo

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

// CreditRepository records changes to user credit balances.
type CreditRepository interface {
	Create(tx *models.CreditTransaction) error
	ListByUser(userID string, limit int64, afterID string) ([]models.CreditTransaction, error)
}

// MongoCreditRepo implements CreditRepository using MongoDB.
type MongoCreditRepo struct {
	coll *mongo.Collection
}

// NewMongoCreditRepo creates a new instance of CreditRepository using MongoDB.
func NewMongoCreditRepo() CreditRepository {
	coll := database.Collection("credit_transactions")
	repo := &MongoCreditRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCreditRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a credit transaction record.
func (r *MongoCreditRepo) Create(tx *models.CreditTransaction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tx.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("failed to create credit transaction: %w", err)
	}
	return nil
}

// ListByUser returns a user's credit transactions, newest first.
func (r *MongoCreditRepo) ListByUser(userID string, limit int64, afterID string) ([]models.CreditTransaction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if afterID != "" {
		filter["id"] = bson.M{"$gt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.CreditTransaction
	for cursor.Next(ctx) {
		var tx models.CreditTransaction
		if err := cursor.Decode(&tx); err != nil {
			return nil, fmt.Errorf("failed to decode credit transaction: %w", err)
		}
		items = append(items, tx)
	}
	return items, nil
}
