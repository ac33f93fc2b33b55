package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/mocks"
	"github.com/fitgenius/backend/internal/types"
)

func TestForCategoryUsesGeneratedTips(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p genai.Prompt) bool {
		return p.Model == "gemini-2.5-flash" &&
			p.Schema != nil && p.Schema.Type == genai.TypeArray &&
			p.Schema.Items != nil && p.Schema.Items.Type == genai.TypeString
	})).Return(`[" Walk after meals ","Lift twice a week","Stretch daily"]`, nil)

	svc := NewRecommendationService(gen, ProviderConfig{Model: "gemini-2.5-flash"})
	tips := svc.ForCategory(context.Background(), TipsContext{Category: TipsExercise})

	assert.Equal(t, []string{"Walk after meals", "Lift twice a week", "Stretch daily"}, tips)
	gen.AssertExpectations(t)
}

func TestForCategoryUnreachableGeneratorUsesFallback(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("dial tcp: connection refused"))

	svc := NewRecommendationService(gen, ProviderConfig{})
	tips := svc.ForCategory(context.Background(), TipsContext{Category: "sleep"})

	assert.Equal(t, []string{
		"Maintain a consistent sleep schedule by going to bed and waking up at the same time daily",
		"Create a relaxing bedtime routine without screens for at least 30 minutes before sleep",
		"Keep your bedroom cool, dark, and quiet for optimal sleep quality",
	}, tips)
}

func TestForCategoryMissingKeyUsesFallback(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", genai.ErrMissingAPIKey)

	svc := NewRecommendationService(gen, ProviderConfig{})
	assert.Equal(t, FallbackTips(TipsGeneral), svc.ForCategory(context.Background(), TipsContext{Category: "unknown"}))
}

func TestForCategoryNilGeneratorUsesFallback(t *testing.T) {
	svc := NewRecommendationService(nil, ProviderConfig{})
	assert.Equal(t, FallbackTips(TipsHydration), svc.ForCategory(context.Background(), TipsContext{Category: TipsHydration}))
}

func TestForCategoryMalformedOutputUsesFallback(t *testing.T) {
	outputs := []string{
		"Here are some tips!",
		`{"tips":["a","b","c"]}`,
		`[]`,
		`["a","   ","c"]`,
		`[1,2,3]`,
		`null`,
	}

	for _, out := range outputs {
		t.Run(out, func(t *testing.T) {
			gen := new(mocks.MockTextGenerator)
			gen.On("Generate", mock.Anything, mock.Anything).Return(out, nil)

			svc := NewRecommendationService(gen, ProviderConfig{})
			outcome := svc.GenerateForCategory(context.Background(), TipsContext{Category: TipsStress})
			assert.ErrorIs(t, outcome.Err(), ErrExternalService)
			assert.Equal(t, FallbackTips(TipsStress), svc.ForCategory(context.Background(), TipsContext{Category: TipsStress}))
		})
	}
}

func TestForCategoryTimeoutUsesFallback(t *testing.T) {
	gen := generatorFunc(func(ctx context.Context, p genai.Prompt) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	svc := NewRecommendationService(gen, ProviderConfig{Timeout: 20 * time.Millisecond})
	start := time.Now()
	tips := svc.ForCategory(context.Background(), TipsContext{Category: TipsNutrition})

	assert.Equal(t, FallbackTips(TipsNutrition), tips)
	assert.Less(t, time.Since(start), time.Second)
}

func TestForCategoryIncludesProfile(t *testing.T) {
	age := 34
	var prompt genai.Prompt
	gen := generatorFunc(func(ctx context.Context, p genai.Prompt) (string, error) {
		prompt = p
		return `["a","b","c"]`, nil
	})

	svc := NewRecommendationService(gen, ProviderConfig{})
	svc.ForCategory(context.Background(), TipsContext{
		Category: "Nutrition",
		Profile: &types.UserProfileSnapshot{
			Age:                 &age,
			DietaryRestrictions: []string{"vegetarian"},
		},
	})

	assert.Contains(t, prompt.User, "category: nutrition")
	assert.Contains(t, prompt.User, "Age: 34")
	assert.Contains(t, prompt.User, "vegetarian")
}

func TestForBMIUsesBMIFallback(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("status 500"))

	svc := NewRecommendationService(gen, ProviderConfig{})
	in := BMIContext{BMI: 39.1, Category: bmi.Obese, Age: 50, Gender: "female"}

	first := svc.ForBMI(context.Background(), in)
	second := svc.ForBMI(context.Background(), in)

	assert.Equal(t, FallbackTips(TipsBMI), first)
	assert.Equal(t, first, second)
}

func TestForBMIPrompt(t *testing.T) {
	var prompt genai.Prompt
	gen := generatorFunc(func(ctx context.Context, p genai.Prompt) (string, error) {
		prompt = p
		return `["one","two","three","four"]`, nil
	})

	svc := NewRecommendationService(gen, ProviderConfig{})
	tips := svc.ForBMI(context.Background(), BMIContext{BMI: 23.1, Category: bmi.NormalWeight})

	assert.Equal(t, []string{"one", "two", "three"}, tips)
	assert.Contains(t, prompt.User, "BMI: 23.1")
	assert.Contains(t, prompt.User, "Category: Normal Weight")
	assert.Contains(t, prompt.User, "Age: not specified")
	assert.Contains(t, prompt.System, "JSON array of exactly 3 strings")
}

func TestParseTips(t *testing.T) {
	tips, err := ParseTips(`["a","b"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tips)

	_, err = ParseTips(`["a",""]`)
	assert.Error(t, err)
	_, err = ParseTips(`"a"`)
	assert.Error(t, err)
}
