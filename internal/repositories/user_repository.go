package repositories

import (
	"context"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// UserProfileRepository persists platform profiles. Profiles are created at
// first sign-in and never hard-deleted; every write is a merge-style upsert
// so concurrent edits resolve last-write-wins.
type UserProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)

	// Upsert creates the profile or merges the given non-zero fields into
	// the existing row.
	Upsert(ctx context.Context, profile *models.UserProfile) error

	// UpdateRole flips only the role field, leaving the rest of the row
	// untouched.
	UpdateRole(ctx context.Context, uid string, role models.UserRole) error

	List(ctx context.Context, filters UserFilters) ([]*models.UserProfile, int64, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
