package artistRepo

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

// MongoArtistRepo implements ArtistRepository using MongoDB.
type MongoArtistRepo struct {
	coll *mongo.Collection
}

// NewMongoArtistRepo creates a new instance of ArtistRepository using MongoDB.
func NewMongoArtistRepo() ArtistRepository {
	coll := database.Collection("artists")
	repo := &MongoArtistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoArtistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "styles", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new artist document.
func (r *MongoArtistRepo) Create(artist *models.Artist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, artist)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// Update modifies an existing artist document.
func (r *MongoArtistRepo) Update(artist *models.Artist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	artist.UpdatedAt = time.Now()
	filter := bson.M{"id": artist.ID}
	update := bson.M{"$set": artist}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update artist with id %s: %w", artist.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("artist with id %s not found", artist.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to an artist document.
func (r *MongoArtistRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update artist with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("artist with id %s not found", id)
	}
	return nil
}

// Delete removes an artist document by its ID.
func (r *MongoArtistRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete artist with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("artist with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an artist by its unique ID.
func (r *MongoArtistRepo) GetByID(id string) (*models.Artist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var artist models.Artist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&artist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch artist with id %s: %w", id, err)
	}
	return &artist, nil
}

// GetByEmail retrieves an artist by email.
func (r *MongoArtistRepo) GetByEmail(email string) (*models.Artist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var artist models.Artist
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&artist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch artist with email %s: %w", email, err)
	}
	return &artist, nil
}

// GetAll retrieves all artists.
func (r *MongoArtistRepo) GetAll() ([]models.Artist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	for cursor.Next(ctx) {
		var a models.Artist
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// SearchByStyle retrieves artists offering the given style, best-rated first.
func (r *MongoArtistRepo) SearchByStyle(style string, limit int64) ([]models.Artist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"styles": style}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists by style %s: %w", style, err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	for cursor.Next(ctx) {
		var a models.Artist
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// SetSchedule replaces the artist's availability schedule.
func (r *MongoArtistRepo) SetSchedule(id string, schedule models.AvailabilitySchedule) error {
	return r.UpdateSetDocument(id, bson.M{"schedule": schedule})
}

// ApplyRating folds one rating into the running average atomically using an
// update pipeline, so the average and count never drift apart. The pipeline
// is the server-side form of FoldRating.
func (r *MongoArtistRepo) ApplyRating(id string, stars int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating", Value: bson.D{
				{Key: "$divide", Value: bson.A{
					bson.D{{Key: "$add", Value: bson.A{
						bson.D{{Key: "$multiply", Value: bson.A{"$rating", "$total_ratings"}}},
						stars,
					}}},
					bson.D{{Key: "$add", Value: bson.A{"$total_ratings", 1}}},
				}},
			}},
			{Key: "total_ratings", Value: bson.D{{Key: "$add", Value: bson.A{"$total_ratings", 1}}}},
			{Key: "updated_at", Value: time.Now()},
		}}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to apply rating to artist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("artist with id %s not found", id)
	}
	return nil
}
