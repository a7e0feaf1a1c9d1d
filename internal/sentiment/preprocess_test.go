package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess_Normalizes(t *testing.T) {
	out, err := Preprocess("  The Agent was GREAT!  ")
	require.NoError(t, err)
	assert.Equal(t, "the agent was great!", out)
}

func TestPreprocess_ReplacesTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"url", "see https://example.com/help for details", "see [url] for details"},
		{"www url", "check www.example.com now", "check [url] now"},
		{"email", "write to Support@Example.COM please", "write to [email] please"},
		{"number", "waited 45 minutes for order 12.5", "waited [num] minutes for order [num]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Preprocess(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPreprocess_StripsSpecialCharacters(t *testing.T) {
	out, err := Preprocess("great service! ★★★ #happy @agent")
	require.NoError(t, err)

	assert.NotContains(t, out, "★")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "@")
	assert.Contains(t, out, "great service!")
}

func TestPreprocess_CollapsesWhitespace(t *testing.T) {
	out, err := Preprocess("too\t\tmany\n\n  spaces")
	require.NoError(t, err)
	assert.Equal(t, "too many spaces", out)
}

func TestPreprocess_EmptyInput(t *testing.T) {
	_, err := Preprocess("")
	assert.Error(t, err)

	_, err = Preprocess("   \t\n ")
	assert.Error(t, err)

	// Input that strips down to nothing is also rejected.
	_, err = Preprocess("★ ☆ ♥")
	assert.Error(t, err)
}

func TestValidateTextLength(t *testing.T) {
	assert.True(t, ValidateTextLength("hello", 10))
	assert.True(t, ValidateTextLength("hello", 5))
	assert.False(t, ValidateTextLength("hello", 4))
	assert.False(t, ValidateTextLength("", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, strings.Repeat("a", 1000), Truncate(strings.Repeat("a", 5000), 1000))
}
