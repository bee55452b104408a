package design

import (
	"context"

	designRepo "inkwell/database/repository/design"
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
	"inkwell/services/storage"
)

// GenerationCost is the credit price of one design generation.
const GenerationCost = 5

// DesignService generates tattoo designs and blog articles from text prompts.
type DesignService interface {
	// GenerateDesign renders the prompt into an image, stores it, and records
	// the design. The user's credit balance is debited up front and refunded
	// if generation fails.
	GenerateDesign(ctx context.Context, userID string, req models.DesignRequest) (*models.Design, error)

	// GenerateArticle produces a structured {title, content} article for the
	// blog from a topic prompt.
	GenerateArticle(ctx context.Context, topic string) (*models.Article, error)

	GetDesign(ctx context.Context, id string) (*models.Design, error)
	ListUserDesigns(ctx context.Context, userID string, limit int64, afterID string) ([]models.Design, error)
}

// DefaultDesignService is the Gemini-backed implementation.
type DefaultDesignService struct {
	Client  *GeminiClient
	Repo    designRepo.DesignRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}
