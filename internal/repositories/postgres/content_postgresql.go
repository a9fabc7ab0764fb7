package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/cache"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

type ContentPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewContentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ContentRepository {
	return &ContentPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *ContentPostgreSQL) Create(ctx context.Context, item *models.ContentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create content item: %w", err)
	}
	cache.InvalidateContentCache(ctx, r.cacheManager, item.ID)
	return nil
}

func (r *ContentPostgreSQL) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	cacheKey := fmt.Sprintf("id:%s", id)
	var item models.ContentItem

	err := r.cacheManager.Content.CacheOrExecute(ctx, cacheKey, &item, cache.ContentCacheConfig.TTL, func() (interface{}, error) {
		var dbItem models.ContentItem
		err := r.db.WithContext(ctx).First(&dbItem, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.NewNotFoundError("content item", id)
			}
			return nil, fmt.Errorf("failed to get content item: %w", err)
		}
		return &dbItem, nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *ContentPostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ContentItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete content item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("content item", id)
	}
	cache.InvalidateContentCache(ctx, r.cacheManager, id)
	return nil
}

func (r *ContentPostgreSQL) List(ctx context.Context, filters repositories.ContentFilters) ([]*models.ContentItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContentItem{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.SubCategory != nil {
		query = query.Where("sub_category = ?", *filters.SubCategory)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count content items: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var items []*models.ContentItem
	if err := query.Order("date DESC").Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list content items: %w", err)
	}

	return items, total, nil
}

// ListAll feeds catalog snapshot replacement, so it bypasses the item cache
// and always reads the current collection.
func (r *ContentPostgreSQL) ListAll(ctx context.Context) ([]*models.ContentItem, error) {
	var items []*models.ContentItem
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list content items: %w", err)
	}
	return items, nil
}
