package services

import (
	"bytes"
	"context"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use validator request types
type SignInRequest = validator.SignInRequest
type ProfileUpdateRequest = validator.ProfileUpdateRequest
type UploadContentRequest = validator.UploadContentRequest
type PromoteRequest = validator.PromoteRequest
type UpdatePostRequest = validator.UpdatePostRequest
type FeedbackRequest = validator.FeedbackRequest

// UploadFile is the binary half of a content upload.
type UploadFile struct {
	Content     []byte
	Filename    string
	ContentType string
}

type SessionResponse struct {
	State   SessionState        `json:"state"`
	Profile *models.UserProfile `json:"profile,omitempty"`
}

// ContentItemView is a catalog item as presented to a particular viewer.
// For a locked item and an anonymous viewer the file URL is withheld and
// LoginRequired is set, so the client can render the login prompt instead
// of the action button.
type ContentItemView struct {
	models.ContentItem
	LoginRequired bool `json:"login_required"`
}

type ContentListResponse struct {
	Items []*models.ContentItem `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

type TeamResponse struct {
	Members []*models.UserProfile `json:"members"`
	Total   int64                 `json:"total"`
}

type FeedbackListResponse struct {
	Entries []*models.Feedback `json:"entries"`
	Total   int64              `json:"total"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	// SignIn completes the interactive provider sign-in. On provider
	// failure the session stays anonymous and the error is returned.
	SignIn(ctx context.Context, req *SignInRequest) (*SessionResponse, error)

	SignOut(ctx context.Context) error

	// ResolveIdentity runs role resolution for an already-verified
	// identity and writes the result back to the profile record. Called
	// on every authenticated request.
	ResolveIdentity(ctx context.Context, identity *models.Identity) (*models.UserProfile, error)

	Sessions() *SessionStore
}

type UserService interface {
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, uid string, req *ProfileUpdateRequest) (*models.UserProfile, error)

	// Promote flips the profile's role flag to admin by exact email
	// match. Returns ErrProfileNotFound when no record exists; promoting
	// an existing admin is a no-op.
	Promote(ctx context.Context, email string) (*models.UserProfile, error)

	Team(ctx context.Context, filters repositories.UserFilters) (*TeamResponse, error)
}

type ContentService interface {
	// Upload stores the blob first and only records metadata once the
	// upload has completed; a failed upload creates no record.
	Upload(ctx context.Context, req *UploadContentRequest, file UploadFile, creatorUID string) (*models.ContentItem, error)

	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters repositories.ContentFilters) (*ContentListResponse, error)
}

type CatalogService interface {
	// Start loads the initial snapshots and acquires the change-feed
	// subscriptions. Close releases every subscription; it is safe on
	// every exit path.
	Start(ctx context.Context) error
	Close() error

	Content() []*models.ContentItem
	Updates() []*models.UpdatePost

	// BrowseSection applies the visibility filter and the lock policy for
	// the given viewer.
	BrowseSection(category models.ContentCategory, subCategory string, authenticated bool) []*ContentItemView
}

type UpdateService interface {
	Post(ctx context.Context, req *UpdatePostRequest, author string) (*models.UpdatePost, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.UpdatePost, error)
}

type FeedbackService interface {
	// Submit accepts feedback from any visitor; author is the profile
	// name, or models.GuestAuthor for anonymous visitors.
	Submit(ctx context.Context, req *FeedbackRequest, author string) (*models.Feedback, error)

	List(ctx context.Context, filters repositories.FeedbackFilters) (*FeedbackListResponse, error)
}

type ExportService interface {
	ExportUsers(ctx context.Context) (*bytes.Buffer, error)
	ExportFeedback(ctx context.Context) (*bytes.Buffer, error)
}

// ServiceManager wires the services together and owns their lifecycle.
type ServiceManager interface {
	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
	HealthCheck(ctx context.Context) error

	Auth() AuthService
	User() UserService
	Content() ContentService
	Catalog() CatalogService
	Update() UpdateService
	Feedback() FeedbackService
	Export() ExportService
}
