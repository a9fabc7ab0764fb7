package casdoor

import (
	"context"
	"fmt"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/redis/go-redis/v9"

	"github.com/kamasanicharan/BoldScholars/internal/cache"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

// CasdoorConfig holds the configuration for Casdoor connection
type CasdoorConfig struct {
	Endpoint         string
	ClientID         string
	ClientSecret     string
	Certificate      string
	OrganizationName string
	ApplicationName  string
}

// IdentityCasdoor implements IdentityRepository against Casdoor, with a
// redis cache in front of provider lookups.
type IdentityCasdoor struct {
	client       *casdoorsdk.Client
	cacheManager *cache.CacheManager
	config       CasdoorConfig
}

func NewIdentityCasdoor(config CasdoorConfig, redisClient *redis.Client) repositories.IdentityRepository {
	client := casdoorsdk.NewClient(
		config.Endpoint,
		config.ClientID,
		config.ClientSecret,
		config.Certificate,
		config.OrganizationName,
		config.ApplicationName,
	)

	return &IdentityCasdoor{
		client:       client,
		cacheManager: cache.NewCacheManager(redisClient),
		config:       config,
	}
}

// ===== CONVERSION =====

func convertCasdoorUser(casdoorUser *casdoorsdk.User) *models.Identity {
	if casdoorUser == nil {
		return nil
	}
	return &models.Identity{
		UID:       casdoorUser.Id,
		Email:     casdoorUser.Email,
		Name:      casdoorUser.DisplayName,
		AvatarURL: casdoorUser.Avatar,
	}
}

// ===== SIGN-IN FLOW =====

// ExchangeCode trades the OAuth authorization code from the interactive
// sign-in for a token and returns the identity it asserts.
func (r *IdentityCasdoor) ExchangeCode(ctx context.Context, code, state string) (*models.Identity, error) {
	token, err := r.client.GetOAuthToken(code, state)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return r.ParseToken(ctx, token.AccessToken)
}

// ParseToken validates the bearer token and returns the identity embedded
// in its claims.
func (r *IdentityCasdoor) ParseToken(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := r.client.ParseJwtToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	identity := convertCasdoorUser(&claims.User)
	if identity == nil || identity.UID == "" {
		return nil, fmt.Errorf("token carries no user identity")
	}

	r.cacheIdentity(ctx, identity)
	return identity, nil
}

// ===== LOOKUPS =====

func (r *IdentityCasdoor) GetByUID(ctx context.Context, uid string) (*models.Identity, error) {
	cacheKey := fmt.Sprintf("id:%s", uid)
	var cached models.Identity
	if err := r.cacheManager.Identity.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	casdoorUser, err := r.client.GetUserByUserId(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from Casdoor: %w", err)
	}
	if casdoorUser == nil {
		return nil, repositories.NewNotFoundError("identity", uid)
	}

	identity := convertCasdoorUser(casdoorUser)
	r.cacheIdentity(ctx, identity)
	return identity, nil
}

func (r *IdentityCasdoor) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	cacheKey := fmt.Sprintf("email:%s", email)
	var cached models.Identity
	if err := r.cacheManager.Identity.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	casdoorUser, err := r.client.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email from Casdoor: %w", err)
	}
	if casdoorUser == nil {
		return nil, repositories.NewNotFoundError("identity", email)
	}

	identity := convertCasdoorUser(casdoorUser)
	r.cacheIdentity(ctx, identity)
	return identity, nil
}

// UpdateDisplayName pushes a display-name change back to the provider.
func (r *IdentityCasdoor) UpdateDisplayName(ctx context.Context, uid, name string) error {
	casdoorUser, err := r.client.GetUserByUserId(uid)
	if err != nil {
		return fmt.Errorf("failed to get user for display-name update: %w", err)
	}
	if casdoorUser == nil {
		return repositories.NewNotFoundError("identity", uid)
	}

	casdoorUser.DisplayName = name
	ok, err := r.client.UpdateUserForColumns(casdoorUser, []string{"display_name"})
	if err != nil {
		return fmt.Errorf("failed to update display name: %w", err)
	}
	if !ok {
		return fmt.Errorf("provider rejected display-name update for %s", uid)
	}

	// Both cache keyings now hold a stale name.
	cache.InvalidateIdentityCache(ctx, r.cacheManager, uid, casdoorUser.Email)
	return nil
}

func (r *IdentityCasdoor) cacheIdentity(ctx context.Context, identity *models.Identity) {
	if identity == nil {
		return
	}
	ttl := cache.IdentityCacheConfig.TTL
	_ = r.cacheManager.Identity.Set(ctx, fmt.Sprintf("id:%s", identity.UID), identity, ttl)
	_ = r.cacheManager.Identity.Set(ctx, fmt.Sprintf("email:%s", identity.Email), identity, ttl)
}
