package redact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/redact"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "api key masked keeping edges",
			input: map[string]any{"api_key": "abcdefgh"},
			want:  map[string]any{"api_key": "ab****gh"},
		},
		{
			name:  "short secret fully masked",
			input: map[string]any{"token": "ab"},
			want:  map[string]any{"token": "**"},
		},
		{
			name:  "four char secret fully masked",
			input: map[string]any{"password": "hunt"},
			want:  map[string]any{"password": "****"},
		},
		{
			name:  "non-sensitive key untouched",
			input: map[string]any{"name": "abcdefgh"},
			want:  map[string]any{"name": "abcdefgh"},
		},
		{
			name:  "case insensitive match",
			input: map[string]any{"API_KEY": "abcdefgh"},
			want:  map[string]any{"API_KEY": "ab****gh"},
		},
		{
			name:  "substring match",
			input: map[string]any{"fred_api_key": "abcdefgh"},
			want:  map[string]any{"fred_api_key": "ab****gh"},
		},
		{
			name:  "non-string sensitive value untouched",
			input: map[string]any{"account_number": 12345678},
			want:  map[string]any{"account_number": 12345678},
		},
		{
			name: "nested maps sanitized recursively",
			input: map[string]any{
				"service": map[string]any{
					"password": "swordfish",
					"host":     "localhost",
				},
			},
			want: map[string]any{
				"service": map[string]any{
					"password": "sw*****sh",
					"host":     "localhost",
				},
			},
		},
		{
			name:  "nil payload",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redact.Sanitize(tt.input))
		})
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"secret": "very-secret-value",
		"nested": map[string]any{"ssn": "123-45-6789"},
	}

	_ = redact.Sanitize(input)

	assert.Equal(t, "very-secret-value", input["secret"])
	assert.Equal(t, "123-45-6789", input["nested"].(map[string]any)["ssn"])
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", redact.Mask(""))
	assert.Equal(t, "*", redact.Mask("a"))
	assert.Equal(t, "****", redact.Mask("abcd"))
	assert.Equal(t, "ab*cd", redact.Mask("abcde"))
	assert.Equal(t, "ab********yz", redact.Mask("abcdefghwxyz"))
}
