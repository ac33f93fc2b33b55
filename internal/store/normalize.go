package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

// emptyToNil treats a present zero value as unset.
func emptyToNil[T comparable](v *T) *T {
	var zero T
	if v == nil || *v == zero {
		return nil
	}
	out := *v
	return &out
}

func emptyListToNil[T any](v []T) []T {
	if len(v) == 0 {
		return nil
	}
	return slices.Clone(v)
}

func optionalValue[T comparable](o types.Optional[T]) *T {
	return emptyToNil(o.Value)
}

func optionalList[T any](o types.Optional[[]T]) []T {
	if o.Value == nil {
		return nil
	}
	return emptyListToNil(*o.Value)
}

func prepareUser(id, username, password string, now time.Time) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidRecord)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return models.User{
		ID:        id,
		Username:  username,
		Password:  string(hash),
		CreatedAt: now,
	}, nil
}

func prepareProfile(p models.UserProfile, id string, now time.Time) (models.UserProfile, error) {
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return models.UserProfile{}, fmt.Errorf("%w: profile requires a user id", ErrInvalidRecord)
	}

	return models.UserProfile{
		ID:                  id,
		UserID:              userID,
		Age:                 emptyToNil(p.Age),
		Gender:              emptyToNil(p.Gender),
		Height:              emptyToNil(p.Height),
		Weight:              emptyToNil(p.Weight),
		ActivityLevel:       emptyToNil(p.ActivityLevel),
		FitnessGoals:        emptyListToNil(p.FitnessGoals),
		DietaryRestrictions: emptyListToNil(p.DietaryRestrictions),
		Allergies:           emptyToNil(p.Allergies),
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// mergeProfile applies only the fields present in req over existing.
func mergeProfile(existing models.UserProfile, req types.UpdateProfileRequest, now time.Time) models.UserProfile {
	merged := cloneProfile(existing)
	merged.UpdatedAt = now

	if req.Age.Set {
		merged.Age = optionalValue(req.Age)
	}
	if req.Gender.Set {
		merged.Gender = optionalValue(req.Gender)
	}
	if req.Height.Set {
		merged.Height = optionalValue(req.Height)
	}
	if req.Weight.Set {
		merged.Weight = optionalValue(req.Weight)
	}
	if req.ActivityLevel.Set {
		merged.ActivityLevel = optionalValue(req.ActivityLevel)
	}
	if req.FitnessGoals.Set {
		merged.FitnessGoals = optionalList(req.FitnessGoals)
	}
	if req.DietaryRestrictions.Set {
		merged.DietaryRestrictions = optionalList(req.DietaryRestrictions)
	}
	if req.Allergies.Set {
		merged.Allergies = optionalValue(req.Allergies)
	}

	return merged
}

func prepareChatSession(s models.ChatSession, id string, now time.Time) models.ChatSession {
	return models.ChatSession{
		ID:        id,
		UserID:    emptyToNil(s.UserID),
		Messages:  validMessages(s.Messages),
		CreatedAt: now,
	}
}

func validMessages(messages []models.ChatMessage) []models.ChatMessage {
	if messages == nil {
		return nil
	}
	return lo.Filter(messages, func(m models.ChatMessage, _ int) bool {
		return m.Valid()
	})
}

func prepareDietPlan(p models.DietPlan, id string, now time.Time) (models.DietPlan, error) {
	goal := strings.TrimSpace(p.Goal)
	if goal == "" {
		return models.DietPlan{}, fmt.Errorf("%w: diet plan requires a goal", ErrInvalidRecord)
	}

	var meals []models.Meal
	if p.Meals != nil {
		meals = lo.Filter(p.Meals, func(m models.Meal, _ int) bool {
			return m.Name != "" && m.Food != "" && m.Calories >= 0
		})
	}

	return models.DietPlan{
		ID:            id,
		UserID:        emptyToNil(p.UserID),
		Goal:          goal,
		DietType:      emptyToNil(p.DietType),
		Meals:         meals,
		TotalCalories: emptyToNil(p.TotalCalories),
		CreatedAt:     now,
	}, nil
}

// prepareBmiRecord rejects records whose bmi or category disagree with the
// value computed from their height and weight.
func prepareBmiRecord(r models.BmiRecord, id string, now time.Time) (models.BmiRecord, error) {
	if !bmi.IsCategory(r.Category) {
		return models.BmiRecord{}, fmt.Errorf("%w: unknown bmi category %q", ErrInvalidRecord, r.Category)
	}
	result, err := bmi.Compute(r.Height, r.Weight)
	if err != nil {
		return models.BmiRecord{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r.BMI != result.BMI || r.Category != string(result.Category) {
		return models.BmiRecord{}, fmt.Errorf("%w: bmi %.1f (%s) does not match height %v and weight %v",
			ErrInvalidRecord, r.BMI, r.Category, r.Height, r.Weight)
	}

	var recs []string
	if r.Recommendations != nil {
		recs = slices.Clone(r.Recommendations)
	}

	return models.BmiRecord{
		ID:              id,
		UserID:          emptyToNil(r.UserID),
		Height:          r.Height,
		Weight:          r.Weight,
		BMI:             r.BMI,
		Category:        r.Category,
		Recommendations: recs,
		CreatedAt:       now,
	}, nil
}

func cloneProfile(p models.UserProfile) models.UserProfile {
	p.FitnessGoals = slices.Clone(p.FitnessGoals)
	p.DietaryRestrictions = slices.Clone(p.DietaryRestrictions)
	return p
}

func cloneChatSession(s models.ChatSession) models.ChatSession {
	s.Messages = slices.Clone(s.Messages)
	return s
}

func cloneDietPlan(p models.DietPlan) models.DietPlan {
	p.Meals = slices.Clone(p.Meals)
	return p
}

func cloneBmiRecord(r models.BmiRecord) models.BmiRecord {
	r.Recommendations = slices.Clone(r.Recommendations)
	return r
}
