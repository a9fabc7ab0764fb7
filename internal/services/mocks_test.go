package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	userProfiles *mockUserProfileRepository
	content      *mockContentRepository
	updatePosts  *mockUpdatePostRepository
	feedback     *mockFeedbackRepository
	identity     *mockIdentityRepository
	blob         *mockBlobStore
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		userProfiles: &mockUserProfileRepository{byUID: map[string]*models.UserProfile{}},
		content:      &mockContentRepository{byID: map[string]*models.ContentItem{}},
		updatePosts:  &mockUpdatePostRepository{byID: map[string]*models.UpdatePost{}},
		feedback:     &mockFeedbackRepository{},
		identity:     &mockIdentityRepository{byUID: map[string]*models.Identity{}},
		blob:         &mockBlobStore{},
	}
}

func (m *mockRepository) UserProfile() repositories.UserProfileRepository { return m.userProfiles }
func (m *mockRepository) Content() repositories.ContentRepository         { return m.content }
func (m *mockRepository) UpdatePost() repositories.UpdatePostRepository   { return m.updatePosts }
func (m *mockRepository) Feedback() repositories.FeedbackRepository       { return m.feedback }
func (m *mockRepository) Identity() repositories.IdentityRepository       { return m.identity }
func (m *mockRepository) Blob() repositories.BlobStore                    { return m.blob }
func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== USER PROFILES =====

type mockUserProfileRepository struct {
	mu    sync.Mutex
	byUID map[string]*models.UserProfile
}

func (m *mockUserProfileRepository) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUID[uid]
	if !ok {
		return nil, repositories.NewNotFoundError("user profile", uid)
	}
	clone := *p
	return &clone, nil
}

func (m *mockUserProfileRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byUID {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.NewNotFoundError("user profile", email)
}

// Upsert mirrors the merge semantics of the real repository: zero values
// in the incoming record leave the stored field untouched.
func (m *mockUserProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byUID[profile.UID]
	if !ok {
		clone := *profile
		if clone.Role == "" {
			clone.Role = models.RoleUser
		}
		m.byUID[profile.UID] = &clone
		return nil
	}
	if profile.Name != "" {
		existing.Name = profile.Name
	}
	if profile.Email != "" {
		existing.Email = profile.Email
	}
	if profile.Role != "" {
		existing.Role = profile.Role
	}
	if profile.Phone != "" {
		existing.Phone = profile.Phone
	}
	if profile.Education != "" {
		existing.Education = profile.Education
	}
	if profile.Profession != "" {
		existing.Profession = profile.Profession
	}
	if profile.AvatarURL != nil {
		existing.AvatarURL = profile.AvatarURL
	}
	return nil
}

func (m *mockUserProfileRepository) UpdateRole(ctx context.Context, uid string, role models.UserRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUID[uid]
	if !ok {
		return repositories.NewNotFoundError("user profile", uid)
	}
	p.Role = role
	return nil
}

func (m *mockUserProfileRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*models.UserProfile, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.UserProfile
	for _, p := range m.byUID {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, int64(len(out)), nil
}

func (m *mockUserProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// ===== CONTENT =====

type mockContentRepository struct {
	mu   sync.Mutex
	byID map[string]*models.ContentItem

	createErr error
}

func (m *mockContentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	clone := *item
	m.byID[item.ID] = &clone
	return nil
}

func (m *mockContentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.byID[id]
	if !ok {
		return nil, repositories.NewNotFoundError("content item", id)
	}
	clone := *item
	return &clone, nil
}

func (m *mockContentRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repositories.NewNotFoundError("content item", id)
	}
	delete(m.byID, id)
	return nil
}

func (m *mockContentRepository) List(ctx context.Context, filters repositories.ContentFilters) ([]*models.ContentItem, int64, error) {
	items, err := m.ListAll(ctx)
	return items, int64(len(items)), err
}

func (m *mockContentRepository) ListAll(ctx context.Context) ([]*models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.ContentItem
	for _, item := range m.byID {
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *mockContentRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// ===== UPDATE POSTS =====

type mockUpdatePostRepository struct {
	mu   sync.Mutex
	byID map[string]*models.UpdatePost
}

func (m *mockUpdatePostRepository) Create(ctx context.Context, post *models.UpdatePost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *post
	m.byID[post.ID] = &clone
	return nil
}

func (m *mockUpdatePostRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repositories.NewNotFoundError("update post", id)
	}
	delete(m.byID, id)
	return nil
}

func (m *mockUpdatePostRepository) ListAll(ctx context.Context) ([]*models.UpdatePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.UpdatePost
	for _, post := range m.byID {
		clone := *post
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ===== FEEDBACK =====

type mockFeedbackRepository struct {
	mu      sync.Mutex
	entries []*models.Feedback
}

func (m *mockFeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *fb
	m.entries = append(m.entries, &clone)
	return nil
}

func (m *mockFeedbackRepository) List(ctx context.Context, filters repositories.FeedbackFilters) ([]*models.Feedback, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Feedback, len(m.entries))
	copy(out, m.entries)
	return out, int64(len(out)), nil
}

// ===== IDENTITY =====

type mockIdentityRepository struct {
	mu    sync.Mutex
	byUID map[string]*models.Identity

	exchangeErr error
}

func (m *mockIdentityRepository) ExchangeCode(ctx context.Context, code, state string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exchangeErr != nil {
		return nil, m.exchangeErr
	}
	identity, ok := m.byUID[code]
	if !ok {
		return nil, fmt.Errorf("unknown code %q", code)
	}
	return identity, nil
}

func (m *mockIdentityRepository) ParseToken(ctx context.Context, token string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.byUID[token]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return identity, nil
}

func (m *mockIdentityRepository) GetByUID(ctx context.Context, uid string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.byUID[uid]
	if !ok {
		return nil, repositories.NewNotFoundError("identity", uid)
	}
	return identity, nil
}

func (m *mockIdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, identity := range m.byUID {
		if identity.Email == email {
			return identity, nil
		}
	}
	return nil, repositories.NewNotFoundError("identity", email)
}

func (m *mockIdentityRepository) UpdateDisplayName(ctx context.Context, uid, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if identity, ok := m.byUID[uid]; ok {
		identity.Name = name
	}
	return nil
}

// ===== BLOB STORE =====

type mockBlobStore struct {
	mu       sync.Mutex
	stored   []string
	storeErr error
}

func (m *mockBlobStore) Store(ctx context.Context, in repositories.BlobStoreInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storeErr != nil {
		return "", m.storeErr
	}
	url := "https://cdn.test/" + in.Filename
	m.stored = append(m.stored, url)
	return url, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.stored {
		if u == url {
			m.stored = append(m.stored[:i], m.stored[i+1:]...)
			return nil
		}
	}
	return nil
}
