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

type feedbackService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewFeedbackService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) FeedbackService {
	return &feedbackService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Submit records feedback from any visitor, signed in or not. Anonymous
// submissions are attributed to models.GuestAuthor.
func (s *feedbackService) Submit(ctx context.Context, req *FeedbackRequest, author string) (*models.Feedback, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if author == "" {
		author = models.GuestAuthor
	}

	fb := &models.Feedback{
		ID:      uuid.New().String(),
		User:    author,
		Message: req.Message,
		Date:    time.Now().UTC(),
	}

	if err := s.repo.Feedback().Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	event := events.NewChangeEvent(events.TopicFeedbackChanged, events.ActionCreated, fb.ID)
	if err := s.publisher.Publish(ctx, events.TopicFeedbackChanged, event); err != nil {
		s.logger.Error("failed to publish change event", "topic", events.TopicFeedbackChanged, "entity_id", fb.ID, "error", err)
	}

	s.logger.Info("feedback submitted", "feedback_id", fb.ID, "author", author)
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context, filters repositories.FeedbackFilters) (*FeedbackListResponse, error) {
	entries, total, err := s.repo.Feedback().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return &FeedbackListResponse{Entries: entries, Total: total}, nil
}
