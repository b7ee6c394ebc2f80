package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"

	// DefaultOpenAIModel is used when no model is configured
	DefaultOpenAIModel = "gpt-4o-mini"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// HTTPStatusError is a non-2xx reply from the completions endpoint
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("openai: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// OpenAIBackend talks to any OpenAI-compatible chat completions endpoint
type OpenAIBackend struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// OpenAIOption customizes an OpenAIBackend
type OpenAIOption func(*OpenAIBackend)

// WithBaseURL points the backend at a compatible server
func WithBaseURL(baseURL string) OpenAIOption {
	return func(b *OpenAIBackend) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			b.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the default client
func WithHTTPClient(client *http.Client) OpenAIOption {
	return func(b *OpenAIBackend) {
		if client != nil {
			b.httpClient = client
		}
	}
}

// NewOpenAIBackend creates a backend authenticating with apiKey
func NewOpenAIBackend(apiKey, model string, opts ...OpenAIOption) (*OpenAIBackend, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai: API key must not be empty")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultOpenAIModel
	}

	b := &OpenAIBackend{
		baseURL:    defaultOpenAIBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Name implements gateway.TextBackend
func (b *OpenAIBackend) Name() string {
	return config.ProviderOpenAI + ":" + b.model
}

// Complete posts one chat completion; the deadline comes from ctx
func (b *OpenAIBackend) Complete(ctx context.Context, req gateway.CompletionRequest) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserText})

	body, err := json.Marshal(chatRequest{
		Model:       b.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	url := chatURL(b.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)

	raw, err := b.do(httpReq, url)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}

	text := strings.TrimSpace(payload.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai: empty response from model")
	}
	return text, nil
}

func (b *OpenAIBackend) do(req *http.Request, url string) ([]byte, error) {
	res, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{StatusCode: res.StatusCode, URL: url, Body: string(buf)}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}

func chatURL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = defaultOpenAIBaseURL
	}
	if strings.HasSuffix(base, "/v1") {
		return base + "/chat/completions"
	}
	return base + "/v1/chat/completions"
}

var _ gateway.TextBackend = (*OpenAIBackend)(nil)
