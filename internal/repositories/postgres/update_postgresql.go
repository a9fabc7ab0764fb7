package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/cache"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

type UpdatePostPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUpdatePostPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UpdatePostRepository {
	return &UpdatePostPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *UpdatePostPostgreSQL) Create(ctx context.Context, post *models.UpdatePost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create update post: %w", err)
	}
	cache.InvalidateUpdateCache(ctx, r.cacheManager, post.ID)
	return nil
}

func (r *UpdatePostPostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.UpdatePost{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("update post", id)
	}
	cache.InvalidateUpdateCache(ctx, r.cacheManager, id)
	return nil
}

func (r *UpdatePostPostgreSQL) ListAll(ctx context.Context) ([]*models.UpdatePost, error) {
	var posts []*models.UpdatePost
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list update posts: %w", err)
	}
	return posts, nil
}
