package artistRepo

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ArtistRepository defines data access for artist documents.
type ArtistRepository interface {
	Create(artist *models.Artist) error
	Update(artist *models.Artist) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Artist, error)
	GetByEmail(email string) (*models.Artist, error)
	GetAll() ([]models.Artist, error)
	SearchByStyle(style string, limit int64) ([]models.Artist, error)

	// SetSchedule replaces the artist's availability schedule.
	SetSchedule(id string, schedule models.AvailabilitySchedule) error

	// ApplyRating folds one new rating into the artist's running average
	// atomically, per FoldRating.
	ApplyRating(id string, stars int) error
}

// FoldRating computes the next running average and count after one more
// rating. The Mongo implementation of ApplyRating evaluates the same formula
// server-side inside an update pipeline.
func FoldRating(avg float64, count, stars int) (float64, int) {
	return (avg*float64(count) + float64(stars)) / float64(count+1), count + 1
}
