package service

import (
	"context"

	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

// TextGenerator produces text for a prompt. *genai.Client implements it.
type TextGenerator interface {
	Generate(ctx context.Context, p genai.Prompt) (string, error)
}

// TipsProvider yields health tips and never fails
type TipsProvider interface {
	ForBMI(ctx context.Context, in BMIContext) []string
	ForCategory(ctx context.Context, in TipsContext) []string
}

// IBMIService defines the interface for BMI assessments
type IBMIService interface {
	Assess(ctx context.Context, req types.CreateBMIRequest) (*models.BmiRecord, error)
	History(ctx context.Context, userID string) ([]models.BmiRecord, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, req types.CreateProfileRequest) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req types.UpdateProfileRequest) (*models.UserProfile, error)
}

// IChatService defines the interface for the chat coach
type IChatService interface {
	Send(ctx context.Context, userID, message string) (string, error)
	Sessions(ctx context.Context, userID string) ([]models.ChatSession, error)
}

// IDietPlanService defines the interface for diet plan operations
type IDietPlanService interface {
	CreatePlan(ctx context.Context, req types.CreateDietPlanRequest) (*models.DietPlan, error)
	Plans(ctx context.Context, userID string) ([]models.DietPlan, error)
}

var _ TextGenerator = (*genai.Client)(nil)
