package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kamasanicharan/BoldScholars/internal/events"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

type updateService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUpdateService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) UpdateService {
	return &updateService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *updateService) Post(ctx context.Context, req *UpdatePostRequest, author string) (*models.UpdatePost, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	post := &models.UpdatePost{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
		Date:    time.Now().UTC(),
		Author:  author,
	}

	if err := s.repo.UpdatePost().Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create update post: %w", err)
	}

	s.publishChange(ctx, events.ActionCreated, post.ID)
	s.logger.Info("update posted", "update_id", post.ID, "author", author)
	return post, nil
}

func (s *updateService) Delete(ctx context.Context, id string) error {
	if err := s.repo.UpdatePost().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUpdateNotFound
		}
		return fmt.Errorf("failed to delete update post: %w", err)
	}

	s.publishChange(ctx, events.ActionDeleted, id)
	s.logger.Info("update deleted", "update_id", id)
	return nil
}

func (s *updateService) List(ctx context.Context) ([]*models.UpdatePost, error) {
	posts, err := s.repo.UpdatePost().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list update posts: %w", err)
	}
	return posts, nil
}

func (s *updateService) publishChange(ctx context.Context, action, entityID string) {
	event := events.NewChangeEvent(events.TopicUpdatesChanged, action, entityID)
	if err := s.publisher.Publish(ctx, events.TopicUpdatesChanged, event); err != nil {
		s.logger.Error("failed to publish change event", "topic", events.TopicUpdatesChanged, "entity_id", entityID, "error", err)
	}
}
