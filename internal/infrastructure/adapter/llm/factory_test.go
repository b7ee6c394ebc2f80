package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
	coremocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/core"
)

type stubParams struct {
	value string
	err   error
	asked string
}

func (s *stubParams) GetParameter(_ context.Context, name string) (string, error) {
	s.asked = name
	return s.value, s.err
}

func TestNewBackend(t *testing.T) {
	testCases := []struct {
		name         string
		cfg          config.LLMConfig
		params       *stubParams
		expectedName string
		expectedErr  error
		errContains  string
	}{
		{
			name:        "No provider",
			cfg:         config.LLMConfig{},
			expectedErr: ErrNoProvider,
		},
		{
			name:         "OpenAI with inline key",
			cfg:          config.LLMConfig{Provider: "OpenAI", Model: "gpt-test", APIKey: "sk-inline", Timeout: 5 * time.Second},
			expectedName: "openai:gpt-test",
		},
		{
			name:         "OpenAI with key from parameter store",
			cfg:          config.LLMConfig{Provider: config.ProviderOpenAI, APIKeyParameter: "/gold-advisor/llm/api-key"},
			params:       &stubParams{value: "sk-ssm"},
			expectedName: "openai:" + DefaultOpenAIModel,
		},
		{
			name:        "Parameter store failure",
			cfg:         config.LLMConfig{Provider: config.ProviderOpenAI, APIKeyParameter: "/p"},
			params:      &stubParams{err: errors.New("AccessDenied")},
			errContains: "AccessDenied",
		},
		{
			name:        "Missing key",
			cfg:         config.LLMConfig{Provider: config.ProviderGemini},
			errContains: "has no API key",
		},
		{
			name:        "Unknown provider",
			cfg:         config.LLMConfig{Provider: "claude", APIKey: "k"},
			errContains: "unknown llm provider",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			logger := coremocks.NewMockLogger(t)
			logger.On("Info", mock.Anything, mock.Anything).Maybe()
			var params ParameterGetter
			if tc.params != nil {
				params = tc.params
			}

			// Act
			backend, err := NewBackend(context.Background(), tc.cfg, params, logger)

			// Assert
			switch {
			case tc.expectedErr != nil:
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, backend)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expectedName, backend.Name())
				if tc.params != nil {
					assert.Equal(t, tc.cfg.APIKeyParameter, tc.params.asked)
				}
			}
		})
	}
}
