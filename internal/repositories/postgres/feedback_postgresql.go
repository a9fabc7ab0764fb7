package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

type FeedbackPostgreSQL struct {
	db *gorm.DB
}

func NewFeedbackPostgreSQL(db *gorm.DB) repositories.FeedbackRepository {
	return &FeedbackPostgreSQL{db: db}
}

func (r *FeedbackPostgreSQL) Create(ctx context.Context, fb *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(fb).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *FeedbackPostgreSQL) List(ctx context.Context, filters repositories.FeedbackFilters) ([]*models.Feedback, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Feedback{})

	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var entries []*models.Feedback
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	return entries, total, nil
}
