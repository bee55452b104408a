package blog

import (
	"context"
	"fmt"
	"time"

	blogRepo "inkwell/database/repository/blog"
	"inkwell/models"
	"inkwell/services/design"
	"inkwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePostInput carries the fields for a hand-written blog post.
type CreatePostInput struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	CoverURL string   `json:"coverUrl"`
	Tags     []string `json:"tags"`
}

// BlogService manages the studio blog, including AI-generated articles.
type BlogService interface {
	CreatePost(authorID string, input CreatePostInput) (*models.BlogPost, error)
	GeneratePost(ctx context.Context, authorID, topic string, tags []string) (*models.BlogPost, error)
	GetPost(id string) (*models.BlogPost, error)
	UpdatePost(id string, input CreatePostInput) (*models.BlogPost, error)
	DeletePost(id string) error
	ListPosts(limit int64, afterID string) ([]models.BlogPost, error)
}

// DefaultBlogService implements BlogService.
type DefaultBlogService struct {
	Repo      blogRepo.BlogRepository
	Generator design.DesignService
}

// CreatePost publishes a hand-written post.
func (s *DefaultBlogService) CreatePost(authorID string, input CreatePostInput) (*models.BlogPost, error) {
	post := &models.BlogPost{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: authorID,
		CoverURL: input.CoverURL,
		Tags:     input.Tags,
	}
	if err := s.Repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}
	return post, nil
}

// GeneratePost asks the content generator for an article on the topic and
// publishes it marked as generated.
func (s *DefaultBlogService) GeneratePost(ctx context.Context, authorID, topic string, tags []string) (*models.BlogPost, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	article, err := s.Generator.GenerateArticle(ctx, topic)
	if err != nil {
		utils.GetLogger().Error("GeneratePost: article generation failed",
			zap.String("topic", topic), zap.Error(err))
		return nil, err
	}

	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Title:     article.Title,
		Content:   article.Content,
		AuthorID:  authorID,
		Tags:      tags,
		Generated: true,
	}
	if err := s.Repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}
	return post, nil
}

// GetPost fetches one post.
func (s *DefaultBlogService) GetPost(id string) (*models.BlogPost, error) {
	post, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s not found", id)
	}
	return post, nil
}

// UpdatePost replaces a post's editable content.
func (s *DefaultBlogService) UpdatePost(id string, input CreatePostInput) (*models.BlogPost, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.CoverURL = input.CoverURL
	post.Tags = input.Tags
	post.UpdatedAt = time.Now()

	if err := s.Repo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post.
func (s *DefaultBlogService) DeletePost(id string) error {
	return s.Repo.Delete(id)
}

// ListPosts returns posts, newest first.
func (s *DefaultBlogService) ListPosts(limit int64, afterID string) ([]models.BlogPost, error) {
	return s.Repo.List(limit, afterID)
}
