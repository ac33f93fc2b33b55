package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

// runStoreTests exercises the behavior every Store implementation shares.
func runStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		s := newStore(t)

		user, err := s.CreateUser(ctx, "sam", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))

		byID, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "sam", byID.Username)

		byName, err := s.GetUserByUsername(ctx, "sam")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		_, err = s.GetUser(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.CreateUser(ctx, "", "pw")
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("profile create normalizes empty fields", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateProfile(ctx, models.UserProfile{
			ID:                  "ignored",
			UserID:              "u1",
			Age:                 ptr(29),
			Gender:              ptr(""),
			Height:              ptr(172.0),
			FitnessGoals:        []string{},
			DietaryRestrictions: []string{"vegan"},
			Allergies:           ptr(""),
		})
		require.NoError(t, err)
		assert.NotEqual(t, "ignored", created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := s.GetProfileByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 29, *got.Age)
		assert.Nil(t, got.Gender)
		assert.Nil(t, got.Weight)
		assert.Nil(t, got.FitnessGoals)
		assert.Equal(t, []string{"vegan"}, got.DietaryRestrictions)
		assert.Nil(t, got.Allergies)

		_, err = s.GetProfileByUser(ctx, "u2")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.CreateProfile(ctx, models.UserProfile{})
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("profile partial update", func(t *testing.T) {
		s := newStore(t)

		_, err := s.CreateProfile(ctx, models.UserProfile{
			UserID:        "u1",
			Age:           ptr(40),
			Gender:        ptr("male"),
			ActivityLevel: ptr("moderate"),
			FitnessGoals:  []string{"strength"},
		})
		require.NoError(t, err)

		updated, err := s.UpdateProfile(ctx, "u1", types.UpdateProfileRequest{
			Age:          types.Some(41),
			Gender:       types.Some(""),
			FitnessGoals: types.Some([]string{}),
			Weight:       types.Some(82.5),
		})
		require.NoError(t, err)

		assert.Equal(t, 41, *updated.Age)
		assert.Nil(t, updated.Gender)
		assert.Nil(t, updated.FitnessGoals)
		assert.Equal(t, 82.5, *updated.Weight)
		require.NotNil(t, updated.ActivityLevel)
		assert.Equal(t, "moderate", *updated.ActivityLevel)

		got, err := s.GetProfileByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, updated.ID, got.ID)
		assert.Equal(t, 41, *got.Age)
		assert.Nil(t, got.Gender)
		assert.Equal(t, "moderate", *got.ActivityLevel)

		_, err = s.UpdateProfile(ctx, "u9", types.UpdateProfileRequest{Age: types.Some(20)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("chat sessions", func(t *testing.T) {
		s := newStore(t)

		first, err := s.CreateChatSession(ctx, models.ChatSession{UserID: ptr("u1"), Messages: []models.ChatMessage{}})
		require.NoError(t, err)
		second, err := s.CreateChatSession(ctx, models.ChatSession{UserID: ptr("u1")})
		require.NoError(t, err)
		_, err = s.CreateChatSession(ctx, models.ChatSession{UserID: ptr("u2")})
		require.NoError(t, err)
		anon, err := s.CreateChatSession(ctx, models.ChatSession{UserID: ptr("")})
		require.NoError(t, err)
		assert.Nil(t, anon.UserID)

		sessions, err := s.GetChatSessionsByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, first.ID, sessions[0].ID)
		assert.Equal(t, second.ID, sessions[1].ID)

		updated, err := s.UpdateChatSession(ctx, first.ID, []models.ChatMessage{
			{Role: models.ChatRoleUser, Content: "hi", Timestamp: 1},
			{Role: "system", Content: "dropped", Timestamp: 2},
			{Role: models.ChatRoleAI, Content: "hello", Timestamp: 3},
		})
		require.NoError(t, err)
		require.Len(t, updated.Messages, 2)

		got, err := s.GetChatSession(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.ChatMessage{
			{Role: models.ChatRoleUser, Content: "hi", Timestamp: 1},
			{Role: models.ChatRoleAI, Content: "hello", Timestamp: 3},
		}, got.Messages)

		_, err = s.UpdateChatSession(ctx, "missing", nil)
		assert.ErrorIs(t, err, ErrNotFound)

		none, err := s.GetChatSessionsByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("diet plans", func(t *testing.T) {
		s := newStore(t)

		plan, err := s.CreateDietPlan(ctx, models.DietPlan{
			UserID:   ptr("u1"),
			Goal:     "weight_loss",
			DietType: ptr(""),
			Meals: []models.Meal{
				{Name: "Breakfast", Food: "Oats", Calories: 300},
				{Name: "", Food: "Nameless", Calories: 100},
			},
			TotalCalories: ptr(300),
		})
		require.NoError(t, err)
		assert.Nil(t, plan.DietType)
		assert.Len(t, plan.Meals, 1)

		got, err := s.GetDietPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, "weight_loss", got.Goal)
		assert.Equal(t, plan.Meals, got.Meals)
		assert.Equal(t, 300, *got.TotalCalories)

		plans, err := s.GetDietPlansByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, plan.ID, plans[0].ID)

		_, err = s.CreateDietPlan(ctx, models.DietPlan{Goal: "  "})
		assert.ErrorIs(t, err, ErrInvalidRecord)
		_, err = s.GetDietPlan(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("bmi records", func(t *testing.T) {
		s := newStore(t)

		result, err := bmi.Compute(180, 75)
		require.NoError(t, err)

		var ids []string
		for i := 0; i < 3; i++ {
			record, err := s.CreateBmiRecord(ctx, models.BmiRecord{
				UserID:          ptr("u1"),
				Height:          180,
				Weight:          75,
				BMI:             result.BMI,
				Category:        string(result.Category),
				Recommendations: []string{"a", "b", "c"},
			})
			require.NoError(t, err)
			ids = append(ids, record.ID)
		}

		records, err := s.GetBmiRecordsByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, r := range records {
			assert.Equal(t, ids[i], r.ID)
			assert.Equal(t, 23.1, r.BMI)
			assert.Equal(t, "Normal Weight", r.Category)
			assert.Equal(t, []string{"a", "b", "c"}, r.Recommendations)
		}

		got, err := s.GetBmiRecord(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, 180.0, got.Height)

		_, err = s.CreateBmiRecord(ctx, models.BmiRecord{Height: 180, Weight: 75, BMI: 23.1, Category: "Obese"})
		assert.ErrorIs(t, err, ErrInvalidRecord)
		_, err = s.CreateBmiRecord(ctx, models.BmiRecord{Height: 180, Weight: 75, BMI: 30, Category: "Normal Weight"})
		assert.ErrorIs(t, err, ErrInvalidRecord)
		_, err = s.CreateBmiRecord(ctx, models.BmiRecord{Height: 180, Weight: 75, BMI: 23.1, Category: "normal"})
		assert.ErrorIs(t, err, ErrInvalidRecord)
		assert.ErrorContains(t, err, "unknown bmi category")
		_, err = s.CreateBmiRecord(ctx, models.BmiRecord{Height: 0, Weight: 75, BMI: 0, Category: "Obese"})
		assert.ErrorIs(t, err, ErrInvalidRecord)
		_, err = s.GetBmiRecord(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
