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

type contentService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewContentService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) ContentService {
	return &contentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Upload stores the file first and records the catalog entry second, so a
// failed upload never produces a dangling record. A failed record write can
// leave an orphaned blob, which is the accepted cheaper failure mode.
func (s *contentService) Upload(ctx context.Context, req *UploadContentRequest, file UploadFile, creatorUID string) (*models.ContentItem, error) {
	// Write access is enforced here as well as at the route, so the service
	// stays safe when reached through another entry point.
	profile, err := s.repo.UserProfile().GetByUID(ctx, creatorUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewPermissionError(creatorUID, "content", "upload", "no profile on record")
		}
		return nil, fmt.Errorf("failed to resolve uploader: %w", err)
	}
	if profile.Role != models.RoleAdmin {
		return nil, NewPermissionError(creatorUID, "content", "upload", "admin role required")
	}

	if errs := s.validator.GetBusinessValidator().ValidateContentUpload(req); len(errs) > 0 {
		return nil, errs
	}

	item := &models.ContentItem{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Type:        models.ContentType(req.Type),
		Category:    models.ContentCategory(req.Category),
		SubCategory: req.SubCategory,
		Date:        time.Now().UTC(),
		Locked:      req.Locked,
		CreatedBy:   creatorUID,
	}

	if len(file.Content) > 0 {
		url, err := s.repo.Blob().Store(ctx, repositories.BlobStoreInput{
			Content:     file.Content,
			Filename:    file.Filename,
			ContentType: file.ContentType,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store content file: %w", err)
		}
		item.FileURL = &url
	}

	if err := s.repo.Content().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to record content item: %w", err)
	}

	s.publishChange(ctx, events.TopicContentChanged, events.ActionCreated, item.ID)

	s.logger.Info("content uploaded",
		"content_id", item.ID,
		"category", item.Category,
		"sub_category", item.SubCategory,
		"created_by", creatorUID)

	return item, nil
}

// Delete removes the catalog record and then the blob. Blob deletion is
// best effort; the record is the source of truth for visibility.
func (s *contentService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.Content().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to get content item: %w", err)
	}

	if err := s.repo.Content().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete content item: %w", err)
	}

	s.publishChange(ctx, events.TopicContentChanged, events.ActionDeleted, id)

	if item.FileURL != nil {
		if err := s.repo.Blob().Delete(ctx, *item.FileURL); err != nil {
			s.logger.Warn("failed to delete content file", "content_id", id, "error", err)
		}
	}

	s.logger.Info("content deleted", "content_id", id)
	return nil
}

func (s *contentService) List(ctx context.Context, filters repositories.ContentFilters) (*ContentListResponse, error) {
	items, total, err := s.repo.Content().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	size := filters.Limit
	if size <= 0 {
		size = len(items)
	}
	page := 1
	if size > 0 {
		page = filters.Offset/size + 1
	}

	return &ContentListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

func (s *contentService) publishChange(ctx context.Context, topic, action, entityID string) {
	event := events.NewChangeEvent(topic, action, entityID)
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Error("failed to publish change event", "topic", topic, "entity_id", entityID, "error", err)
	}
}
