package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateContentCache drops the cached item and every cached listing
// after an admin upload or delete.
func InvalidateContentCache(ctx context.Context, cm *CacheManager, itemID string) {
	SafeDelete(ctx, cm.Content, fmt.Sprintf("id:%s", itemID))
	SafeInvalidatePattern(ctx, cm.Content, "list:*")
}

// InvalidateUpdateCache drops cached announcement listings after a post or
// delete.
func InvalidateUpdateCache(ctx context.Context, cm *CacheManager, postID string) {
	SafeDelete(ctx, cm.Update, fmt.Sprintf("id:%s", postID))
	SafeInvalidatePattern(ctx, cm.Update, "list:*")
}

// InvalidateIdentityCache drops cached identity lookups for a user, both
// keyings. Called after a promotion so the stale role does not linger.
func InvalidateIdentityCache(ctx context.Context, cm *CacheManager, uid, email string) {
	SafeDelete(ctx, cm.Identity,
		fmt.Sprintf("id:%s", uid),
		fmt.Sprintf("email:%s", email))
}
