package repositories

import (
	"context"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// IdentityRepository is the interface to the external identity provider.
// The platform never stores credentials; it exchanges provider artifacts
// (OAuth codes, tokens) for identities and reads provider-side user data.
type IdentityRepository interface {
	// ExchangeCode completes the interactive sign-in: it trades the OAuth
	// authorization code for a token and returns the asserted identity.
	ExchangeCode(ctx context.Context, code, state string) (*models.Identity, error)

	// ParseToken validates a bearer token and returns the identity it
	// asserts. Used on every authenticated request.
	ParseToken(ctx context.Context, token string) (*models.Identity, error)

	GetByUID(ctx context.Context, uid string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)

	// UpdateDisplayName pushes a profile name change back to the provider
	// so future sessions assert the new name.
	UpdateDisplayName(ctx context.Context, uid, name string) error
}

// BlobStoreInput carries one binary upload.
type BlobStoreInput struct {
	Content     []byte
	Filename    string
	ContentType string
}

// BlobStore stores binary blobs and returns durable retrieval URLs. The
// content service calls Store before it writes any metadata record; a
// failed Store means no record is ever created.
type BlobStore interface {
	Store(ctx context.Context, in BlobStoreInput) (string, error)
	Delete(ctx context.Context, url string) error
}
