package repositories

import (
	"context"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// ContentRepository persists catalog items. Items are write-once: created
// by an admin upload, removed by an admin delete, never updated in place.
// List results are ordered by descending date, which is the order the
// catalog snapshot and the visibility filter preserve.
type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, id string) (*models.ContentItem, error)
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filters ContentFilters) ([]*models.ContentItem, int64, error)

	// ListAll returns the full collection ordered by descending date, for
	// catalog snapshot replacement.
	ListAll(ctx context.Context) ([]*models.ContentItem, error)
}

// UpdatePostRepository persists announcements.
type UpdatePostRepository interface {
	Create(ctx context.Context, post *models.UpdatePost) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*models.UpdatePost, error)
}

// FeedbackRepository persists visitor feedback. There is no delete path.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	List(ctx context.Context, filters FeedbackFilters) ([]*models.Feedback, int64, error)
}
