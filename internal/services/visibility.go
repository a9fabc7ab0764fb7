package services

import "github.com/kamasanicharan/BoldScholars/internal/models"

// FilterContent selects the items matching a (category, sub-category)
// pair. Pure, total and order-preserving: the result keeps the input
// order, which upstream is descending date.
func FilterContent(items []*models.ContentItem, category models.ContentCategory, subCategory string) []*models.ContentItem {
	matched := make([]*models.ContentItem, 0)
	for _, item := range items {
		if item.Category == category && item.SubCategory == subCategory {
			matched = append(matched, item)
		}
	}
	return matched
}

// ApplyLockPolicy renders items for a viewer. The lock is binary: an
// authenticated viewer (user or admin) bypasses it unconditionally, an
// anonymous viewer still sees the item listed but with the file URL
// withheld and LoginRequired set. When enforcement is disabled the lock
// flag is ignored entirely.
func ApplyLockPolicy(items []*models.ContentItem, authenticated, enforced bool) []*ContentItemView {
	views := make([]*ContentItemView, 0, len(items))
	for _, item := range items {
		view := &ContentItemView{ContentItem: *item}
		if enforced && item.Locked && !authenticated {
			view.FileURL = nil
			view.LoginRequired = true
		}
		views = append(views, view)
	}
	return views
}
