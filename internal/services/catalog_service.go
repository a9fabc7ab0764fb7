package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/kamasanicharan/BoldScholars/internal/events"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

// catalogService maintains a materialized, always-current view of the
// content and announcement collections by subscribing to the change bus.
// On every notification the whole snapshot for that collection is replaced
// rather than patched; simple and correct at the catalog sizes in scope.
//
// The two subscriptions are independent: no relative delivery order is
// assumed between content and update notifications.
type catalogService struct {
	repo         repositories.Repository
	subscriber   events.EventSubscriber
	logger       *slog.Logger
	lockEnforced bool

	mu      sync.RWMutex
	content []*models.ContentItem
	updates []*models.UpdatePost

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewCatalogService(repo repositories.Repository, subscriber events.EventSubscriber, logger *slog.Logger, lockEnforced bool) CatalogService {
	return &catalogService{
		repo:         repo,
		subscriber:   subscriber,
		logger:       logger,
		lockEnforced: lockEnforced,
	}
}

// Start loads the initial snapshots and acquires one subscription per
// collection. Every subscription acquired here is released by Close.
func (s *catalogService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	if err := s.refreshContent(ctx); err != nil {
		return fmt.Errorf("failed to load initial content snapshot: %w", err)
	}
	if err := s.refreshUpdates(ctx); err != nil {
		return fmt.Errorf("failed to load initial updates snapshot: %w", err)
	}

	feedCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	contentCh, err := s.subscriber.Subscribe(feedCtx, events.TopicContentChanged)
	if err != nil {
		cancel()
		return err
	}
	updatesCh, err := s.subscriber.Subscribe(feedCtx, events.TopicUpdatesChanged)
	if err != nil {
		cancel()
		return err
	}

	s.wg.Add(2)
	go s.consume(feedCtx, contentCh, s.refreshContent)
	go s.consume(feedCtx, updatesCh, s.refreshUpdates)

	s.logger.Info("catalog live sync started")
	return nil
}

// Close releases the subscriptions and waits for the feed goroutines.
// Safe to call on every exit path, including before Start.
func (s *catalogService) Close() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.started = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		s.wg.Wait()
		s.logger.Info("catalog live sync stopped")
	}
	return nil
}

func (s *catalogService) consume(ctx context.Context, ch <-chan *message.Message, refresh func(context.Context) error) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			// The message is only an invalidation signal; the refresh
			// re-queries the collection and swaps the snapshot.
			if err := refresh(ctx); err != nil {
				s.logger.Error("catalog refresh failed", "error", err)
			}
			msg.Ack()
		}
	}
}

func (s *catalogService) refreshContent(ctx context.Context) error {
	items, err := s.repo.Content().ListAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.content = items
	s.mu.Unlock()
	return nil
}

func (s *catalogService) refreshUpdates(ctx context.Context) error {
	posts, err := s.repo.UpdatePost().ListAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.updates = posts
	s.mu.Unlock()
	return nil
}

// Content returns the current content snapshot, descending by date.
func (s *catalogService) Content() []*models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ContentItem, len(s.content))
	copy(out, s.content)
	return out
}

// Updates returns the current announcements snapshot, descending by date.
func (s *catalogService) Updates() []*models.UpdatePost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.UpdatePost, len(s.updates))
	copy(out, s.updates)
	return out
}

func (s *catalogService) BrowseSection(category models.ContentCategory, subCategory string, authenticated bool) []*ContentItemView {
	matched := FilterContent(s.Content(), category, subCategory)
	return ApplyLockPolicy(matched, authenticated, s.lockEnforced)
}
