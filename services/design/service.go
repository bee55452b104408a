package design

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func buildDesignPrompt(req models.DesignRequest) string {
	var sb strings.Builder
	sb.WriteString("Tattoo design, clean linework on plain background: ")
	sb.WriteString(req.Prompt)
	if req.Style != "" {
		sb.WriteString(", in " + req.Style + " style")
	}
	if req.Placement != "" {
		sb.WriteString(", shaped for placement on the " + req.Placement)
	}
	if req.Color {
		sb.WriteString(", full color")
	} else {
		sb.WriteString(", black and grey")
	}
	return sb.String()
}

// GenerateDesign debits the user's credits, renders the prompt, uploads the
// image, and records the design. Credits are refunded when generation fails.
func (s *DefaultDesignService) GenerateDesign(ctx context.Context, userID string, req models.DesignRequest) (*models.Design, error) {
	logger := utils.GetLogger()

	if err := s.Users.AdjustCredits(userID, -GenerationCost); err != nil {
		return nil, fmt.Errorf("insufficient credits: %w", err)
	}

	d, err := s.generate(ctx, userID, req)
	if err != nil {
		if refundErr := s.Users.AdjustCredits(userID, GenerationCost); refundErr != nil {
			logger.Error("failed to refund credits after generation failure",
				zap.String("userID", userID), zap.Error(refundErr))
		}
		return nil, err
	}
	return d, nil
}

func (s *DefaultDesignService) generate(ctx context.Context, userID string, req models.DesignRequest) (*models.Design, error) {
	data, mimeType, err := s.Client.GenerateImage(ctx, buildDesignPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("design generation failed: %w", err)
	}

	ext := "png"
	if parts := strings.Split(mimeType, "/"); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	tmp, err := os.CreateTemp("", "design-*."+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to stage generated image: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage generated image: %w", err)
	}
	tmp.Close()

	publicID, err := s.Storage.UploadFile(ctx, tmp.Name(), "designs")
	if err != nil {
		return nil, fmt.Errorf("failed to store generated image: %w", err)
	}
	imageURL, err := s.Storage.GetDownloadURL(ctx, "image", publicID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image URL: %w", err)
	}

	d := &models.Design{
		ID:        uuid.New().String(),
		UserID:    userID,
		Prompt:    req.Prompt,
		Style:     req.Style,
		Placement: req.Placement,
		Color:     req.Color,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, fmt.Errorf("failed to record design: %w", err)
	}
	return d, nil
}

// GenerateArticle asks the model for a JSON {title, content} payload and
// parses it, tolerating markdown code fences around the object.
func (s *DefaultDesignService) GenerateArticle(ctx context.Context, topic string) (*models.Article, error) {
	prompt := fmt.Sprintf(
		`Write a blog article for a tattoo studio about: %s. Respond with a single JSON object {"title": ..., "content": ...} and nothing else.`,
		topic)

	raw, err := s.Client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var article models.Article
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &article); err != nil {
		return nil, fmt.Errorf("article generation returned malformed payload: %w", err)
	}
	if article.Title == "" || article.Content == "" {
		return nil, fmt.Errorf("article generation returned an empty title or body")
	}
	return &article, nil
}

// GetDesign fetches one design record.
func (s *DefaultDesignService) GetDesign(ctx context.Context, id string) (*models.Design, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("design %s not found", id)
	}
	return d, nil
}

// ListUserDesigns returns a user's designs, paginated.
func (s *DefaultDesignService) ListUserDesigns(ctx context.Context, userID string, limit int64, afterID string) ([]models.Design, error) {
	return s.Repo.ListByUser(userID, limit, afterID)
}
