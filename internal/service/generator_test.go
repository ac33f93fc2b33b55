package service

import (
	"context"

	"github.com/fitgenius/backend/internal/genai"
)

// generatorFunc adapts a function to TextGenerator
type generatorFunc func(ctx context.Context, p genai.Prompt) (string, error)

func (f generatorFunc) Generate(ctx context.Context, p genai.Prompt) (string, error) {
	return f(ctx, p)
}
