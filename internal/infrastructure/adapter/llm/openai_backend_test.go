package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
)

func TestChatURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1/chat/completions"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/chat/completions"},
		{"http://localhost:8080", "http://localhost:8080/v1/chat/completions"},
		{"", "https://api.openai.com/v1/chat/completions"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chatURL(tc.base), "base=%q", tc.base)
	}
}

func TestNewOpenAIBackend(t *testing.T) {
	_, err := NewOpenAIBackend(" ", "")
	require.Error(t, err)

	backend, err := NewOpenAIBackend("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, "openai:"+DefaultOpenAIModel, backend.Name())
	assert.Equal(t, defaultOpenAIBaseURL, backend.baseURL)
}

func TestOpenAIBackend_Complete(t *testing.T) {
	// Arrange
	var captured chatRequest
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" TRUE \n"}}]}`))
	}))
	defer server.Close()

	backend, err := NewOpenAIBackend("sk-test", "gpt-test", WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	temperature := float32(0)

	// Act
	text, err := backend.Complete(context.Background(), gateway.CompletionRequest{
		SystemInstruction: "Answer TRUE or FALSE",
		UserText:          "Is gold a good hedge?",
		Temperature:       &temperature,
		MaxOutputTokens:   5,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "TRUE", text)
	assert.Equal(t, "Bearer sk-test", authHeader)
	assert.Equal(t, "gpt-test", captured.Model)
	assert.Equal(t, int32(5), captured.MaxTokens)
	require.NotNil(t, captured.Temperature)
	assert.Equal(t, float32(0), *captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Is gold a good hedge?", captured.Messages[1].Content)
}

func TestOpenAIBackend_CompleteFailures(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{"Upstream error status", http.StatusTooManyRequests, `{"error":"rate limited"}`, "unexpected status 429"},
		{"No choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"Empty content", http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  "}}]}`, "empty response"},
		{"Malformed JSON", http.StatusOK, `{"choices":`, "decode response"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()
			backend, err := NewOpenAIBackend("sk-test", "gpt-test", WithBaseURL(server.URL))
			require.NoError(t, err)

			// Act
			_, err = backend.Complete(context.Background(), gateway.CompletionRequest{UserText: "hi"})

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestOpenAIBackend_StatusErrorIsTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	backend, err := NewOpenAIBackend("sk-bad", "gpt-test", WithBaseURL(server.URL+"/v1"))
	require.NoError(t, err)

	_, err = backend.Complete(context.Background(), gateway.CompletionRequest{UserText: "hi"})

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}
