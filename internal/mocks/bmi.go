package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

// MockBMIService is a mock implementation of the BMIService interface
type MockBMIService struct {
	mock.Mock
}

func (m *MockBMIService) Assess(ctx context.Context, req types.CreateBMIRequest) (*models.BmiRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BmiRecord), args.Error(1)
}

func (m *MockBMIService) History(ctx context.Context, userID string) ([]models.BmiRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BmiRecord), args.Error(1)
}
