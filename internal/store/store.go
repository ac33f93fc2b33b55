package store

import (
	"context"
	"errors"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

var (
	// ErrNotFound is returned when no entity matches the given id or user
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a required field is missing or inconsistent
	ErrInvalidRecord = errors.New("invalid record")
)

// Store is the record store contract shared by the in-memory and gorm backends.
//
// Create methods ignore any ID and CreatedAt on the argument: they generate a
// fresh id, stamp the creation time, and normalize empty optional fields to nil.
// ByUser lookups return records in insertion order and never return nil slices.
type Store interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	GetProfileByUser(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req types.UpdateProfileRequest) (*models.UserProfile, error)

	CreateChatSession(ctx context.Context, session models.ChatSession) (*models.ChatSession, error)
	GetChatSession(ctx context.Context, id string) (*models.ChatSession, error)
	GetChatSessionsByUser(ctx context.Context, userID string) ([]models.ChatSession, error)
	UpdateChatSession(ctx context.Context, id string, messages []models.ChatMessage) (*models.ChatSession, error)

	CreateDietPlan(ctx context.Context, plan models.DietPlan) (*models.DietPlan, error)
	GetDietPlan(ctx context.Context, id string) (*models.DietPlan, error)
	GetDietPlansByUser(ctx context.Context, userID string) ([]models.DietPlan, error)

	CreateBmiRecord(ctx context.Context, record models.BmiRecord) (*models.BmiRecord, error)
	GetBmiRecord(ctx context.Context, id string) (*models.BmiRecord, error)
	GetBmiRecordsByUser(ctx context.Context, userID string) ([]models.BmiRecord, error)
}
