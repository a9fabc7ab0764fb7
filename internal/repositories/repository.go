package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository aggregates the per-collection repositories.
type Repository interface {
	// Platform collections
	UserProfile() UserProfileRepository
	Content() ContentRepository
	UpdatePost() UpdatePostRepository
	Feedback() FeedbackRepository

	// External collaborators
	Identity() IdentityRepository
	Blob() BlobStore

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages the repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// NewNotFoundError wraps ErrNotFound with the entity and key that missed.
func NewNotFoundError(entity, key string) error {
	return fmt.Errorf("%s %q: %w", entity, key, ErrNotFound)
}

// IsNotFoundError reports whether err means a missing record, from either
// this package or gorm.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
