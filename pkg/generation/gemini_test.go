package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"object in prose", "Here you go:\n{\"a\":1}\nEnjoy!", `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"array", `result: ["a","b"]`, `["a","b"]`},
		{"object before array", `{"recipes":["a","b"]}`, `{"recipes":["a","b"]}`},
		{"no json passthrough", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestGenerateOptionsMockFallback(t *testing.T) {
	client := NewGeminiClient()
	if client.Configured() {
		t.Skip("GEMINI_API_KEY is set")
	}

	options, err := client.GenerateOptions(context.Background(), "土豆, 牛肉")
	require.NoError(t, err)
	assert.Len(t, options.Recipes, 3)
}

func TestGenerateRecipeMockFallback(t *testing.T) {
	client := NewGeminiClient()
	if client.Configured() {
		t.Skip("GEMINI_API_KEY is set")
	}

	generated, err := client.GenerateRecipe(context.Background(), "土豆炖牛肉", "土豆, 牛肉")
	require.NoError(t, err)
	assert.Equal(t, "土豆炖牛肉", generated.RecipeName)
	assert.NotEmpty(t, generated.Description)
	assert.NotEmpty(t, generated.Ingredients)
	assert.NotEmpty(t, generated.Instructions)
}

func TestMockRecipeDefaultName(t *testing.T) {
	generated := mockRecipe("")
	assert.NotEmpty(t, generated.RecipeName)
}
