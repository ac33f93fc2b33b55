package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/store"
	"github.com/fitgenius/backend/internal/types"
)

const dietPlanSystemPrompt = `You are a professional nutritionist creating personalized meal plans. Generate a daily diet plan with specific meals and calorie counts.

Requirements:
- Goal: %s
- Diet Type: %s
- Allergies: %s
- Activity Level: %s

Provide a JSON response with exactly this structure:
{
  "meals": [
    {"name": "Breakfast", "food": "specific meal description", "calories": number},
    {"name": "Morning Snack", "food": "specific snack description", "calories": number},
    {"name": "Lunch", "food": "specific meal description", "calories": number},
    {"name": "Afternoon Snack", "food": "specific snack description", "calories": number},
    {"name": "Dinner", "food": "specific meal description", "calories": number}
  ],
  "totalCalories": total_daily_calories
}

Consider the goal when determining calories:
- Weight loss: 1400-1600 calories
- Weight gain: 2200-2500 calories
- Muscle gain: 2000-2300 calories
- Maintenance: 1800-2000 calories

Adjust based on activity level. Be specific with food items and portions.`

var dietPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"meals": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"food":     {Type: genai.TypeString},
					"calories": {Type: genai.TypeNumber},
				},
				Required: []string{"name", "food", "calories"},
			},
		},
		"totalCalories": {Type: genai.TypeNumber},
	},
	Required: []string{"meals", "totalCalories"},
}

// DietPlanRequest describes the plan to generate
type DietPlanRequest struct {
	Goal          string
	DietType      string
	Allergies     string
	ActivityLevel string
}

// DietPlanService generates and stores daily meal plans
type DietPlanService struct {
	store store.Store
	gen   TextGenerator
	cfg   ProviderConfig
}

var _ IDietPlanService = (*DietPlanService)(nil)

// NewDietPlanService creates a new DietPlanService instance
func NewDietPlanService(s store.Store, gen TextGenerator, cfg ProviderConfig) *DietPlanService {
	return &DietPlanService{
		store: s,
		gen:   gen,
		cfg:   cfg.withDefaults(),
	}
}

// Generate returns a plan for req, falling back to the static plan for its goal
func (s *DietPlanService) Generate(ctx context.Context, req DietPlanRequest) Plan {
	return resolve("DietPlan", s.GeneratePlan(ctx, req), FallbackPlan(req.Goal))
}

// GeneratePlan is the generator-only path of Generate
func (s *DietPlanService) GeneratePlan(ctx context.Context, req DietPlanRequest) Outcome[Plan] {
	if s.gen == nil {
		return ExternalFailure[Plan](genai.ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, genai.Prompt{
		Model: s.cfg.Model,
		System: fmt.Sprintf(dietPlanSystemPrompt,
			req.Goal,
			orDefault(req.DietType, "No specific restrictions"),
			orDefault(req.Allergies, "None"),
			orDefault(req.ActivityLevel, "not specified")),
		User: fmt.Sprintf("Create a diet plan for: %s, diet type: %s, allergies: %s, activity: %s",
			req.Goal, req.DietType, req.Allergies, req.ActivityLevel),
		Schema: dietPlanSchema,
	})
	if err != nil {
		return ExternalFailure[Plan](err)
	}

	plan, err := ParsePlan(text)
	if err != nil {
		return ExternalFailure[Plan](err)
	}
	return Ok(plan)
}

// ParsePlan validates generator output against the meal plan shape.
// Calorie values are rounded to whole numbers.
func ParsePlan(text string) (Plan, error) {
	var raw struct {
		Meals []struct {
			Name     string   `json:"name"`
			Food     string   `json:"food"`
			Calories *float64 `json:"calories"`
		} `json:"meals"`
		TotalCalories *float64 `json:"totalCalories"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Plan{}, fmt.Errorf("malformed plan: %w", err)
	}

	if len(raw.Meals) == 0 {
		return Plan{}, errors.New("malformed plan: no meals")
	}
	if raw.TotalCalories == nil || !(*raw.TotalCalories > 0) || math.IsInf(*raw.TotalCalories, 0) {
		return Plan{}, errors.New("malformed plan: totalCalories must be positive")
	}

	meals := make([]models.Meal, 0, len(raw.Meals))
	for i, m := range raw.Meals {
		name, food := strings.TrimSpace(m.Name), strings.TrimSpace(m.Food)
		if name == "" || food == "" {
			return Plan{}, fmt.Errorf("malformed plan: meal %d has no name or food", i)
		}
		if m.Calories == nil || !(*m.Calories >= 0) || math.IsInf(*m.Calories, 0) {
			return Plan{}, fmt.Errorf("malformed plan: meal %d has invalid calories", i)
		}
		meals = append(meals, models.Meal{
			Name:     name,
			Food:     food,
			Calories: int(math.Round(*m.Calories)),
		})
	}

	return Plan{
		Meals:         meals,
		TotalCalories: int(math.Round(*raw.TotalCalories)),
	}, nil
}

// CreatePlan generates a plan for req and stores it
func (s *DietPlanService) CreatePlan(ctx context.Context, req types.CreateDietPlanRequest) (*models.DietPlan, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return nil, fmt.Errorf("%w: goal is required", ErrMissingInput)
	}

	plan := s.Generate(ctx, DietPlanRequest{
		Goal:          goal,
		DietType:      strings.TrimSpace(req.DietType),
		Allergies:     strings.TrimSpace(req.Allergies),
		ActivityLevel: strings.TrimSpace(req.ActivityLevel),
	})

	record := models.DietPlan{
		UserID:        lo.ToPtr(req.UserID),
		Goal:          goal,
		DietType:      lo.ToPtr(strings.TrimSpace(req.DietType)),
		Meals:         plan.Meals,
		TotalCalories: lo.ToPtr(plan.TotalCalories),
	}

	created, err := s.store.CreateDietPlan(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save diet plan: %w", err)
	}
	return created, nil
}

// Plans lists a user's diet plans, oldest first
func (s *DietPlanService) Plans(ctx context.Context, userID string) ([]models.DietPlan, error) {
	plans, err := s.store.GetDietPlansByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}
	return plans, nil
}
