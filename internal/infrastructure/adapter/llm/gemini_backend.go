package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// contentGenerator is the subset of *genai.Models used here
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		cfg *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiBackend completes text through the Gemini API
type GeminiBackend struct {
	models contentGenerator
	model  string
}

// NewGeminiBackend creates a Gemini API client for apiKey
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: API key must not be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return newGeminiBackend(client.Models, model), nil
}

func newGeminiBackend(models contentGenerator, model string) *GeminiBackend {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &GeminiBackend{models: models, model: model}
}

// Name implements gateway.TextBackend
func (b *GeminiBackend) Name() string {
	return config.ProviderGemini + ":" + b.model
}

// Complete sends a single GenerateContent call
func (b *GeminiBackend) Complete(ctx context.Context, req gateway.CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := b.models.GenerateContent(ctx, b.model, genai.Text(req.UserText), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini: empty response from model")
	}
	return text, nil
}

var _ gateway.TextBackend = (*GeminiBackend)(nil)
