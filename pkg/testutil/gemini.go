package testutil

import (
	"context"

	"github.com/templetoayurveda/backend/pkg/api/gemini"
	"github.com/templetoayurveda/backend/pkg/errorx"
)

type MockGeminiEndpoint struct {
	GenerateTextFunc  func(ctx context.Context, prompt, systemInstruction string) (string, error)
	ClassifyImageFunc func(ctx context.Context, image []byte, mime string) (*gemini.Classification, error)
	GenerateImageFunc func(ctx context.Context, prompt string) ([]byte, error)
	GroundedRouteFunc func(ctx context.Context, location, destination string) (string, error)
}

func (m *MockGeminiEndpoint) GenerateText(
	ctx context.Context, prompt, systemInstruction string,
) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt, systemInstruction)
	}

	return "", errorx.New(errorx.NotImplemented, "Not implemented")
}

func (m *MockGeminiEndpoint) ClassifyImage(
	ctx context.Context, image []byte, mime string,
) (*gemini.Classification, error) {
	if m.ClassifyImageFunc != nil {
		return m.ClassifyImageFunc(ctx, image, mime)
	}

	return nil, errorx.New(errorx.NotImplemented, "Not implemented")
}

func (m *MockGeminiEndpoint) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt)
	}

	return nil, errorx.New(errorx.NotImplemented, "Not implemented")
}

func (m *MockGeminiEndpoint) GroundedRoute(
	ctx context.Context, location, destination string,
) (string, error) {
	if m.GroundedRouteFunc != nil {
		return m.GroundedRouteFunc(ctx, location, destination)
	}

	return "", errorx.New(errorx.NotImplemented, "Not implemented")
}
