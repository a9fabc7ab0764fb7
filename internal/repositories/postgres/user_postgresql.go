package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

type UserProfilePostgreSQL struct {
	db *gorm.DB
}

func NewUserProfilePostgreSQL(db *gorm.DB) repositories.UserProfileRepository {
	return &UserProfilePostgreSQL{db: db}
}

func (r *UserProfilePostgreSQL) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("user profile", uid)
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return &profile, nil
}

func (r *UserProfilePostgreSQL) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("user profile", email)
		}
		return nil, fmt.Errorf("failed to get user profile by email: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile on first sign-in, or merges the non-zero
// fields of the given profile into the existing row. Merge-then-write is
// last-write-wins; that is the intended conflict resolution for a profile
// edit racing a promotion.
func (r *UserProfilePostgreSQL) Upsert(ctx context.Context, profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.WithContext(ctx).First(&existing, "uid = ?", profile.UID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if profile.Role == "" {
			profile.Role = models.RoleUser
		}
		if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create user profile: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load user profile for upsert: %w", err)
	}

	// Updates with a struct value skips zero-value fields, which gives the
	// merge semantics: absent fields stay untouched.
	err = r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("uid = ?", profile.UID).
		Updates(profile).Error
	if err != nil {
		return fmt.Errorf("failed to merge user profile: %w", err)
	}
	return nil
}

func (r *UserProfilePostgreSQL) UpdateRole(ctx context.Context, uid string, role models.UserRole) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("uid = ?", uid).
		Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("user profile", uid)
	}
	return nil
}

func (r *UserProfilePostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.UserProfile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserProfile{})

	if filters.Query != "" {
		pattern := "%" + strings.ToLower(filters.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user profiles: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var profiles []*models.UserProfile
	if err := query.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *UserProfilePostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return count > 0, nil
}
