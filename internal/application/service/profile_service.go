package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
	"github.com/swipelite/swipelite-api/pkg/apperror"
)

// ProfileService handles business profile operations, including the active
// profile selection used as the seller identity on new invoices
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// CreateProfileInput represents the create profile input
type CreateProfileInput struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
	Email   string
}

// CreateProfile creates a new business profile. The first profile ever
// created becomes both default and active.
func (s *ProfileService) CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.BusinessProfile, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Profile name is required")
	}

	existing, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profile := &entity.BusinessProfile{
		Name:      input.Name,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		Phone:     input.Phone,
		Email:     input.Email,
		IsDefault: len(existing) == 0,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if profile.IsDefault {
		if err := s.profileRepo.SetActiveID(ctx, profile.ID); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}

// ListProfiles lists all business profiles
func (s *ProfileService) ListProfiles(ctx context.Context) ([]entity.BusinessProfile, error) {
	return s.profileRepo.List(ctx)
}

// GetActiveProfile returns the currently active profile. When the stored
// active id no longer resolves it falls back to the default profile, then to
// the first profile.
func (s *ProfileService) GetActiveProfile(ctx context.Context) (*entity.BusinessProfile, error) {
	activeID, err := s.profileRepo.GetActiveID(ctx)
	if err == nil {
		profile, err := s.profileRepo.GetByID(ctx, activeID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return profile, nil
		}
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, err
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, apperror.NewNotFoundError("Active profile")
	}

	fallback := profiles[0]
	for _, p := range profiles {
		if p.IsDefault {
			fallback = p
			break
		}
	}
	if err := s.profileRepo.SetActiveID(ctx, fallback.ID); err != nil {
		return nil, err
	}
	return &fallback, nil
}

// ActivateProfile switches the active profile to the given id
func (s *ProfileService) ActivateProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	if err := s.profileRepo.SetActiveID(ctx, id); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	ID      uuid.UUID
	Name    *string
	Address *string
	GSTIN   *string
	Phone   *string
	Email   *string
}

// UpdateProfile updates a business profile
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.GSTIN != nil {
		profile.GSTIN = *input.GSTIN
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// SetDefaultProfile marks the given profile as default and clears the flag
// on every other profile
func (s *ProfileService) SetDefaultProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	target, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		wantDefault := profiles[i].ID == id
		if profiles[i].IsDefault == wantDefault {
			continue
		}
		profiles[i].IsDefault = wantDefault
		if err := s.profileRepo.Update(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}

	target.IsDefault = true
	return target, nil
}

// DeleteProfile deletes a profile. The last remaining profile cannot be
// deleted. When the deleted profile was default or active, both roles move to
// the first remaining profile.
func (s *ProfileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperror.NewNotFoundError("Profile")
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(profiles) <= 1 {
		return apperror.NewBadRequestError("Cannot delete the only business profile")
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	remaining, err := s.profileRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}

	if profile.IsDefault {
		remaining[0].IsDefault = true
		if err := s.profileRepo.Update(ctx, &remaining[0]); err != nil {
			return err
		}
	}

	activeID, err := s.profileRepo.GetActiveID(ctx)
	if errors.Is(err, kvstore.ErrNotFound) || (err == nil && activeID == id) {
		if err := s.profileRepo.SetActiveID(ctx, remaining[0].ID); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}
