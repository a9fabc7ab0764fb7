package services

import (
	"testing"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFilterContent(t *testing.T) {
	items := []*models.ContentItem{
		{ID: "a", Category: models.CategoryVault, SubCategory: models.SubStudyGuides},
		{ID: "b", Category: models.CategoryMastery, SubCategory: models.SubPracticePapers},
		{ID: "c", Category: models.CategoryVault, SubCategory: models.SubStudyGuides},
		{ID: "d", Category: models.CategoryVault, SubCategory: models.SubFAQs},
	}

	t.Run("matches both fields", func(t *testing.T) {
		got := FilterContent(items, models.CategoryVault, models.SubStudyGuides)
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Errorf("FilterContent() = %v, want [a c] in input order", ids(got))
		}
	})

	t.Run("same sub-category name in the other category does not leak", func(t *testing.T) {
		mixed := []*models.ContentItem{
			{ID: "vault", Category: models.CategoryVault, SubCategory: models.SubCourseMaterials},
			{ID: "mastery", Category: models.CategoryMastery, SubCategory: models.SubCourseMaterials},
		}
		got := FilterContent(mixed, models.CategoryVault, models.SubCourseMaterials)
		if len(got) != 1 || got[0].ID != "vault" {
			t.Errorf("FilterContent() = %v, want [vault]", ids(got))
		}
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		got := FilterContent(items, models.CategoryMastery, models.SubTipsStrategy)
		if got == nil || len(got) != 0 {
			t.Errorf("FilterContent() = %v, want empty slice", got)
		}
	})
}

func ids(items []*models.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestApplyLockPolicy(t *testing.T) {
	locked := &models.ContentItem{
		ID:      "locked",
		FileURL: strPtr("https://cdn.test/locked.pdf"),
		Locked:  true,
	}
	open := &models.ContentItem{
		ID:      "open",
		FileURL: strPtr("https://cdn.test/open.pdf"),
		Locked:  false,
	}

	tests := []struct {
		name          string
		authenticated bool
		enforced      bool
		wantURL       bool
		wantPrompt    bool
	}{
		{"anonymous viewer loses the file URL", false, true, false, true},
		{"authenticated viewer bypasses the lock", true, true, true, false},
		{"enforcement off ignores the lock", false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := ApplyLockPolicy([]*models.ContentItem{locked, open}, tt.authenticated, tt.enforced)
			if len(views) != 2 {
				t.Fatalf("ApplyLockPolicy() returned %d views, want 2: locked items stay listed", len(views))
			}

			lockedView := views[0]
			if (lockedView.FileURL != nil) != tt.wantURL {
				t.Errorf("locked item FileURL present = %v, want %v", lockedView.FileURL != nil, tt.wantURL)
			}
			if lockedView.LoginRequired != tt.wantPrompt {
				t.Errorf("locked item LoginRequired = %v, want %v", lockedView.LoginRequired, tt.wantPrompt)
			}

			// Unlocked items are untouched for every viewer.
			openView := views[1]
			if openView.FileURL == nil || openView.LoginRequired {
				t.Errorf("open item altered: FileURL=%v LoginRequired=%v", openView.FileURL, openView.LoginRequired)
			}
		})
	}
}

// The policy must not write through to the catalog snapshot.
func TestApplyLockPolicyDoesNotMutateInput(t *testing.T) {
	item := &models.ContentItem{
		ID:      "locked",
		FileURL: strPtr("https://cdn.test/locked.pdf"),
		Locked:  true,
	}

	ApplyLockPolicy([]*models.ContentItem{item}, false, true)

	if item.FileURL == nil {
		t.Error("ApplyLockPolicy cleared the FileURL on the source item")
	}
}
