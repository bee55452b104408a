package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService wraps the object storage used for reference images, portfolio
// shots, and generated designs.
type StorageService interface {
	// UploadFile uploads a file (local path or remote URL) into the given
	// folder and returns its permanent public identifier.
	UploadFile(ctx context.Context, source, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a retrievable URL for a stored file. expires
	// is accepted for interface stability; public assets ignore it.
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorage is the Cloudinary-backed implementation.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStorage wraps an initialized Cloudinary client.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}
}
