package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/store"
	"github.com/fitgenius/backend/internal/types"
)

// ProfileService handles user profile operations
type ProfileService struct {
	store store.Store
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{
		store: s,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.store.GetProfileByUser(ctx, userID)
}

// CreateProfile stores a new profile
func (s *ProfileService) CreateProfile(ctx context.Context, req types.CreateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.store.CreateProfile(ctx, models.UserProfile{
		UserID:              req.UserID,
		Age:                 req.Age,
		Gender:              req.Gender,
		Height:              req.Height,
		Weight:              req.Weight,
		ActivityLevel:       req.ActivityLevel,
		FitnessGoals:        req.FitnessGoals,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies the fields present in req to the user's profile.
// Numeric fields follow the same bounds as CreateProfile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req types.UpdateProfileRequest) (*models.UserProfile, error) {
	if err := validateProfileUpdate(req); err != nil {
		return nil, err
	}
	return s.store.UpdateProfile(ctx, userID, req)
}

func validateProfileUpdate(req types.UpdateProfileRequest) error {
	if v := req.Age.Value; v != nil && (*v < 0 || *v > 150) {
		return fmt.Errorf("%w: age must be between 0 and 150, got %d", ErrInvalidInput, *v)
	}
	if v := req.Height.Value; v != nil && *v < 0 {
		return fmt.Errorf("%w: height must not be negative, got %v", ErrInvalidInput, *v)
	}
	if v := req.Weight.Value; v != nil && *v < 0 {
		return fmt.Errorf("%w: weight must not be negative, got %v", ErrInvalidInput, *v)
	}
	if v := req.Gender.Value; v != nil && utf8.RuneCountInString(*v) > 32 {
		return fmt.Errorf("%w: gender must be at most 32 characters", ErrInvalidInput)
	}
	if v := req.ActivityLevel.Value; v != nil && utf8.RuneCountInString(*v) > 64 {
		return fmt.Errorf("%w: activityLevel must be at most 64 characters", ErrInvalidInput)
	}
	return nil
}
