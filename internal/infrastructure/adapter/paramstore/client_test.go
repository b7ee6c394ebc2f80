package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	out       *ssm.GetParameterOutput
	err       error
	lastInput *ssm.GetParameterInput
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestGetParameter(t *testing.T) {
	testCases := []struct {
		name        string
		param       string
		out         *ssm.GetParameterOutput
		apiErr      error
		expected    string
		errContains string
	}{
		{
			name:     "Value is trimmed",
			param:    "/gold-advisor/llm/api-key",
			out:      &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(" sk-123\n")}},
			expected: "sk-123",
		},
		{
			name:        "Blank name",
			param:       "  ",
			errContains: "name is required",
		},
		{
			name:        "API error",
			param:       "/p",
			apiErr:      errors.New("AccessDenied"),
			errContains: "AccessDenied",
		},
		{
			name:        "Missing value",
			param:       "/p",
			out:         &ssm.GetParameterOutput{Parameter: &types.Parameter{}},
			errContains: "has no value",
		},
		{
			name:        "Empty value",
			param:       "/p",
			out:         &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("   ")}},
			errContains: "is empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			api := &fakeSSM{out: tc.out, err: tc.apiErr}
			client, err := New(api)
			require.NoError(t, err)

			// Act
			value, err := client.GetParameter(context.Background(), tc.param)

			// Assert
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
			assert.True(t, aws.ToBool(api.lastInput.WithDecryption))
			assert.Equal(t, tc.param, aws.ToString(api.lastInput.Name))
		})
	}
}
