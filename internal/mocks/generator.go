package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fitgenius/backend/internal/genai"
)

// MockTextGenerator stands in for the Gemini client
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, p genai.Prompt) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}
