package services

import (
	"context"
	"testing"
	"time"

	"github.com/kamasanicharan/BoldScholars/internal/events"
	"github.com/kamasanicharan/BoldScholars/internal/models"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}

func TestCatalogSnapshotReplace(t *testing.T) {
	repo := newMockRepository()
	repo.content.byID["a"] = &models.ContentItem{
		ID:          "a",
		Category:    models.CategoryVault,
		SubCategory: models.SubStudyGuides,
		Date:        time.Now().Add(-time.Hour),
	}

	bus := events.NewGoChannelBus(testLogger())
	svc := NewCatalogService(repo, bus.Subscriber, testLogger(), true)

	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer svc.Close()

	// Initial snapshot holds the pre-existing item.
	if items := svc.Content(); len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("initial snapshot = %v, want [a]", items)
	}

	// A new item plus a change notification replaces the snapshot.
	repo.content.byID["b"] = &models.ContentItem{
		ID:          "b",
		Category:    models.CategoryVault,
		SubCategory: models.SubStudyGuides,
		Date:        time.Now(),
	}
	event := events.NewChangeEvent(events.TopicContentChanged, events.ActionCreated, "b")
	if err := bus.Publisher.Publish(ctx, events.TopicContentChanged, event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(svc.Content()) == 2
	})

	// Newest first.
	if items := svc.Content(); items[0].ID != "b" {
		t.Errorf("snapshot order = %v, want newest first", ids(items))
	}
}

func TestCatalogUpdatesFeed(t *testing.T) {
	repo := newMockRepository()
	bus := events.NewGoChannelBus(testLogger())
	svc := NewCatalogService(repo, bus.Subscriber, testLogger(), true)

	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer svc.Close()

	repo.updatePosts.byID["p1"] = &models.UpdatePost{
		ID:    "p1",
		Title: "Exam schedule",
		Date:  time.Now(),
	}
	event := events.NewChangeEvent(events.TopicUpdatesChanged, events.ActionCreated, "p1")
	if err := bus.Publisher.Publish(ctx, events.TopicUpdatesChanged, event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(svc.Updates()) == 1
	})
}

func TestBrowseSection(t *testing.T) {
	repo := newMockRepository()
	fileURL := "https://cdn.test/guide.pdf"
	repo.content.byID["locked"] = &models.ContentItem{
		ID:          "locked",
		Category:    models.CategoryVault,
		SubCategory: models.SubStudyGuides,
		FileURL:     &fileURL,
		Locked:      true,
		Date:        time.Now(),
	}
	repo.content.byID["other-section"] = &models.ContentItem{
		ID:          "other-section",
		Category:    models.CategoryMastery,
		SubCategory: models.SubPracticePapers,
		Date:        time.Now(),
	}

	bus := events.NewGoChannelBus(testLogger())
	svc := NewCatalogService(repo, bus.Subscriber, testLogger(), true)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer svc.Close()

	t.Run("anonymous viewer", func(t *testing.T) {
		views := svc.BrowseSection(models.CategoryVault, models.SubStudyGuides, false)
		if len(views) != 1 {
			t.Fatalf("section views = %d, want 1", len(views))
		}
		if views[0].FileURL != nil || !views[0].LoginRequired {
			t.Errorf("anonymous view of locked item = %+v, want URL withheld", views[0])
		}
	})

	t.Run("authenticated viewer", func(t *testing.T) {
		views := svc.BrowseSection(models.CategoryVault, models.SubStudyGuides, true)
		if len(views) != 1 {
			t.Fatalf("section views = %d, want 1", len(views))
		}
		if views[0].FileURL == nil || views[0].LoginRequired {
			t.Errorf("authenticated view of locked item = %+v, want URL present", views[0])
		}
	})
}

func TestCatalogCloseBeforeStart(t *testing.T) {
	repo := newMockRepository()
	bus := events.NewGoChannelBus(testLogger())
	svc := NewCatalogService(repo, bus.Subscriber, testLogger(), true)

	if err := svc.Close(); err != nil {
		t.Errorf("Close before Start failed: %v", err)
	}
}
