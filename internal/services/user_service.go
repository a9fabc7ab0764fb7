package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	profile, err := s.repo.UserProfile().GetByUID(ctx, uid)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile merges the student-editable fields into the profile record
// and mirrors a name change to the identity provider. UID, email and role
// are never touched here.
func (s *userService) UpdateProfile(ctx context.Context, uid string, req *ProfileUpdateRequest) (*models.UserProfile, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	update := &models.UserProfile{UID: uid}
	if req.Name != nil {
		update.Name = *req.Name
	}
	if req.Phone != nil {
		update.Phone = *req.Phone
	}
	if req.Education != nil {
		update.Education = *req.Education
	}
	if req.Profession != nil {
		update.Profession = *req.Profession
	}
	if req.AvatarURL != nil {
		update.AvatarURL = req.AvatarURL
	}

	// The record must exist; profile editing is only reachable signed in.
	if _, err := s.repo.UserProfile().GetByUID(ctx, uid); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.repo.UserProfile().Upsert(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if req.Name != nil {
		// Keep the provider's display name in sync so future sessions
		// assert the new name. Failure here is logged, not fatal: the
		// platform record is already saved.
		if err := s.repo.Identity().UpdateDisplayName(ctx, uid, *req.Name); err != nil {
			s.logger.Warn("failed to sync display name to identity provider",
				"uid", uid, "error", err)
		}
	}

	return s.repo.UserProfile().GetByUID(ctx, uid)
}

// Promote looks up exactly one profile by exact email match and sets its
// role to admin. Other fields are untouched; promoting an admin again is a
// no-op. When no record exists the caller should instruct the target user
// to sign in once first, since profiles are created at first sign-in.
func (s *userService) Promote(ctx context.Context, email string) (*models.UserProfile, error) {
	if errs := s.validator.GetBusinessValidator().ValidatePromotion(&PromoteRequest{Email: email}); len(errs) > 0 {
		return nil, errs
	}

	profile, err := s.repo.UserProfile().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to look up promotion target: %w", err)
	}

	if profile.Role == models.RoleAdmin {
		return profile, nil
	}

	if err := s.repo.UserProfile().UpdateRole(ctx, profile.UID, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to promote %s: %w", email, err)
	}

	s.logger.Info("promoted user to admin", "uid", profile.UID, "email", email)

	profile.Role = models.RoleAdmin
	return profile, nil
}

func (s *userService) Team(ctx context.Context, filters repositories.UserFilters) (*TeamResponse, error) {
	members, total, err := s.repo.UserProfile().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	return &TeamResponse{Members: members, Total: total}, nil
}
