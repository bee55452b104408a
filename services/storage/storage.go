package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// UploadFile sends the source into destFolder and returns the asset's public
// identifier. Filenames are randomized so two artists uploading "tattoo.jpg"
// never collide.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, source, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder:         destFolder,
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload to %s failed: %w", destFolder, err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: upload to %s returned no public ID", destFolder)
	}
	return result.PublicID, nil
}

// DeleteFile removes an asset by public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: delete of %s failed: %w", publicID, err)
	}
	return nil
}

// GetDownloadURL resolves a public delivery URL for the asset.
func (s *CloudinaryStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	var (
		a   *asset.Asset
		err error
	)
	switch resourceType {
	case "image":
		a, err = s.cld.Image(publicID)
	case "video":
		a, err = s.cld.Video(publicID)
	default:
		a, err = s.cld.Media(publicID)
	}
	if err != nil {
		return "", fmt.Errorf("storage: failed to resolve asset %s: %w", publicID, err)
	}

	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to build URL for %s: %w", publicID, err)
	}
	return url, nil
}
