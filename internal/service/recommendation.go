package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/types"
)

const tipCount = 3

const tipsSystemPrompt = `You are a certified health and fitness expert. Provide practical, science-based health advice.
Keep recommendations specific, actionable, and safe. Always suggest consulting healthcare professionals when appropriate.
Return your response as a JSON array of exactly 3 strings, each containing one specific tip:
["tip 1", "tip 2", "tip 3"]`

var tipsSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// ProviderConfig selects the model and per-call deadline of a provider
type ProviderConfig struct {
	Model   string
	Timeout time.Duration
}

func (c ProviderConfig) withDefaults() ProviderConfig {
	if c.Timeout <= 0 {
		c.Timeout = genai.DefaultTimeout
	}
	return c
}

// BMIContext describes a completed BMI calculation
type BMIContext struct {
	BMI      float64
	Category bmi.Category
	Age      int
	Gender   string
}

// TipsContext selects a tip category, optionally with the requester's profile
type TipsContext struct {
	Category string
	Profile  *types.UserProfileSnapshot
}

// RecommendationService asks the text generator for health tips and falls
// back to the static tables when it cannot.
type RecommendationService struct {
	gen TextGenerator
	cfg ProviderConfig
}

var _ TipsProvider = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(gen TextGenerator, cfg ProviderConfig) *RecommendationService {
	return &RecommendationService{
		gen: gen,
		cfg: cfg.withDefaults(),
	}
}

// ForBMI returns three recommendations for a BMI result
func (s *RecommendationService) ForBMI(ctx context.Context, in BMIContext) []string {
	return resolve("Recommendations", s.GenerateForBMI(ctx, in), FallbackTips(TipsBMI))
}

// ForCategory returns three tips for a category such as sleep or nutrition
func (s *RecommendationService) ForCategory(ctx context.Context, in TipsContext) []string {
	return resolve("HealthTips", s.GenerateForCategory(ctx, in), FallbackTips(in.Category))
}

// GenerateForBMI is the generator-only path of ForBMI
func (s *RecommendationService) GenerateForBMI(ctx context.Context, in BMIContext) Outcome[[]string] {
	return s.generate(ctx, bmiPrompt(in))
}

// GenerateForCategory is the generator-only path of ForCategory
func (s *RecommendationService) GenerateForCategory(ctx context.Context, in TipsContext) Outcome[[]string] {
	return s.generate(ctx, categoryPrompt(in))
}

func (s *RecommendationService) generate(ctx context.Context, user string) Outcome[[]string] {
	if s.gen == nil {
		return ExternalFailure[[]string](genai.ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, genai.Prompt{
		Model:  s.cfg.Model,
		System: tipsSystemPrompt,
		User:   user,
		Schema: tipsSchema,
	})
	if err != nil {
		return ExternalFailure[[]string](err)
	}

	tips, err := ParseTips(text)
	if err != nil {
		return ExternalFailure[[]string](err)
	}
	return Ok(tips)
}

// ParseTips validates generator output as a non-empty JSON array of
// non-empty strings. Extra items beyond three are dropped.
func ParseTips(text string) ([]string, error) {
	var tips []string
	if err := json.Unmarshal([]byte(text), &tips); err != nil {
		return nil, fmt.Errorf("malformed tips: %w", err)
	}

	tips = lo.Map(tips, func(tip string, _ int) string {
		return strings.TrimSpace(tip)
	})
	if len(tips) == 0 {
		return nil, errors.New("malformed tips: empty list")
	}
	if lo.Contains(tips, "") {
		return nil, errors.New("malformed tips: blank tip")
	}

	if len(tips) > tipCount {
		tips = tips[:tipCount]
	}
	return tips, nil
}

func bmiPrompt(in BMIContext) string {
	return fmt.Sprintf(`Generate 3 specific health recommendations for someone with:
- BMI: %.1f
- Category: %s
- Age: %s
- Gender: %s

Focus on actionable advice for improving health based on their BMI category.`,
		in.BMI, in.Category, ageOrUnknown(in.Age), orDefault(in.Gender, "not specified"))
}

func categoryPrompt(in TipsContext) string {
	category := orDefault(normalizeKey(in.Category), TipsGeneral)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate 3 specific, actionable health tips for the category: %s.\n", category)
	sb.WriteString("Make them practical and evidence-based. Focus on tips that can be implemented immediately.")

	if p := in.Profile; p != nil {
		sb.WriteString("\n\nTailor them to this person:")
		if p.Age != nil {
			fmt.Fprintf(&sb, "\n- Age: %d", *p.Age)
		}
		if p.Gender != "" {
			fmt.Fprintf(&sb, "\n- Gender: %s", p.Gender)
		}
		if p.Height != nil && p.Weight != nil {
			fmt.Fprintf(&sb, "\n- Height: %.1f cm, Weight: %.1f kg", *p.Height, *p.Weight)
		}
		if p.ActivityLevel != "" {
			fmt.Fprintf(&sb, "\n- Activity level: %s", p.ActivityLevel)
		}
		if len(p.FitnessGoals) > 0 {
			fmt.Fprintf(&sb, "\n- Goals: %s", strings.Join(p.FitnessGoals, ", "))
		}
		if len(p.DietaryRestrictions) > 0 {
			fmt.Fprintf(&sb, "\n- Dietary restrictions: %s", strings.Join(p.DietaryRestrictions, ", "))
		}
		if p.Allergies != "" {
			fmt.Fprintf(&sb, "\n- Allergies: %s", p.Allergies)
		}
	}
	return sb.String()
}

func ageOrUnknown(age int) string {
	if age <= 0 {
		return "not specified"
	}
	return fmt.Sprintf("%d", age)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
