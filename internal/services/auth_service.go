package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

type authService struct {
	repo            repositories.Repository
	sessions        *SessionStore
	logger          *slog.Logger
	validator       *validator.Validator
	superAdminEmail string
}

func NewAuthService(repo repositories.Repository, sessions *SessionStore, logger *slog.Logger, v *validator.Validator, superAdminEmail string) AuthService {
	return &authService{
		repo:            repo,
		sessions:        sessions,
		logger:          logger,
		validator:       v,
		superAdminEmail: superAdminEmail,
	}
}

func (s *authService) SignIn(ctx context.Context, req *SignInRequest) (*SessionResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.sessions.BeginAuthentication(); err != nil {
		return nil, err
	}

	identity, err := s.repo.Identity().ExchangeCode(ctx, req.Code, req.State)
	if err != nil {
		// Provider failure: the session returns to anonymous and the
		// error is surfaced. Nothing was written.
		s.sessions.FailAuthentication()
		s.logger.Warn("sign-in failed", "error", err)
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}

	profile, err := s.ResolveIdentity(ctx, identity)
	if err != nil {
		s.sessions.FailAuthentication()
		return nil, err
	}

	s.sessions.CompleteAuthentication(profile)
	s.logger.Info("signed in", "uid", profile.UID, "role", profile.Role)

	return &SessionResponse{State: SessionAuthenticated, Profile: profile}, nil
}

func (s *authService) SignOut(ctx context.Context) error {
	s.sessions.SignOut()
	s.logger.Info("signed out")
	return nil
}

// ResolveIdentity maps the identity to its effective role and writes the
// result back as a merge-upsert, creating the profile record at first
// sign-in. The pure decision lives in ResolveRole; this adds the effect.
func (s *authService) ResolveIdentity(ctx context.Context, identity *models.Identity) (*models.UserProfile, error) {
	if identity == nil {
		return nil, fmt.Errorf("no identity to resolve")
	}

	var persisted *models.UserRole
	existing, err := s.repo.UserProfile().GetByUID(ctx, identity.UID)
	switch {
	case err == nil:
		persisted = &existing.Role
	case repositories.IsNotFoundError(err):
		// First sign-in: no record yet.
	default:
		return nil, fmt.Errorf("failed to load persisted role: %w", err)
	}

	role := ResolveRole(s.superAdminEmail, identity, persisted)

	profile := &models.UserProfile{
		UID:   identity.UID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  role,
	}
	if identity.AvatarURL != "" {
		profile.AvatarURL = &identity.AvatarURL
	}

	if err := s.repo.UserProfile().Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to write resolved profile: %w", err)
	}

	// Return the merged record, not the partial write.
	merged, err := s.repo.UserProfile().GetByUID(ctx, identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return merged, nil
}

func (s *authService) Sessions() *SessionStore {
	return s.sessions
}
