package shopRepo

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

// ShopRepository defines data access for products and orders.
type ShopRepository interface {
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id string) error
	GetProductByID(id string) (*models.Product, error)
	ListProducts(limit int64, afterID string) ([]models.Product, error)

	// DecrementStock reserves quantity units of a product. The update only
	// matches while stock covers the quantity.
	DecrementStock(id string, quantity int) error

	// IncrementStock returns quantity units to a product, releasing a
	// reservation after a failed charge.
	IncrementStock(id string, quantity int) error

	CreateOrder(o *models.Order) error
	ListOrdersByUser(userID string, limit int64, afterID string) ([]models.Order, error)
}

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	repo := &MongoShopRepo{
		products: database.Collection("products"),
		orders:   database.Collection("orders"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoShopRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	if _, err := r.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}

// CreateProduct inserts a product document.
func (r *MongoShopRepo) CreateProduct(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct modifies an existing product document.
func (r *MongoShopRepo) UpdateProduct(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.products.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product with id %s not found", p.ID)
	}
	return nil
}

// DeleteProduct removes a product by its ID.
func (r *MongoShopRepo) DeleteProduct(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.products.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product with id %s not found", id)
	}
	return nil
}

// GetProductByID retrieves a product by its unique ID.
func (r *MongoShopRepo) GetProductByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Product
	if err := r.products.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	return &p, nil
}

// ListProducts returns products paginated by id.
func (r *MongoShopRepo) ListProducts(limit int64, afterID string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if afterID != "" {
		filter["id"] = bson.M{"$gt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		items = append(items, p)
	}
	return items, nil
}

// DecrementStock reserves quantity units of a product.
func (r *MongoShopRepo) DecrementStock(id string, quantity int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.products.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product %s not found or insufficient stock", id)
	}
	return nil
}

// IncrementStock returns quantity units to a product.
func (r *MongoShopRepo) IncrementStock(id string, quantity int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"stock": quantity},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.products.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to restore stock for product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}

// CreateOrder inserts an order document.
func (r *MongoShopRepo) CreateOrder(o *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	o.CreatedAt = time.Now()
	if _, err := r.orders.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ListOrdersByUser returns a user's orders, paginated by id.
func (r *MongoShopRepo) ListOrdersByUser(userID string, limit int64, afterID string) ([]models.Order, error) {
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

	cursor, err := r.orders.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		items = append(items, o)
	}
	return items, nil
}
