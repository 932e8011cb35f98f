package toolspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenAIFormat(t *testing.T) {
	f := FormatterFor("openai")

	got := f.Format(Spec{
		Name:          "web_search",
		ToolType:      "function",
		Configuration: map[string]interface{}{"max_results": 5},
	})

	assert.Equal(t, map[string]interface{}{
		"type":        "function",
		"max_results": 5,
	}, got)
}

func TestOpenAIConfiguredTypeWins(t *testing.T) {
	f := FormatterFor("openai")

	got := f.Format(Spec{
		Name:          "web_search",
		ToolType:      "function",
		Configuration: map[string]interface{}{"type": "web_search_preview"},
	})

	assert.Equal(t, "web_search_preview", got["type"])
}

func TestAnthropicFormat(t *testing.T) {
	f := FormatterFor("anthropic")

	got := f.Format(Spec{
		Name:          "web_search",
		ToolType:      "web_search_20250305",
		Configuration: map[string]interface{}{"max_uses": 3},
	})

	assert.Equal(t, map[string]interface{}{
		"name":     "web_search",
		"type":     "web_search_20250305",
		"max_uses": 3,
	}, got)
}

func TestUnknownProviderGetsGenericShape(t *testing.T) {
	f := FormatterFor("ollama")

	got := f.Format(Spec{Name: "prompt_library", ToolType: "retrieval"})

	assert.Equal(t, map[string]interface{}{"type": "retrieval"}, got)
}

func TestFormatAll(t *testing.T) {
	specs := []Spec{
		{Name: "a", ToolType: "function"},
		{Name: "b", ToolType: "retrieval"},
	}

	got := FormatAll("openai", specs)
	assert.Len(t, got, 2)
	assert.Equal(t, "function", got[0]["type"])
	assert.Equal(t, "retrieval", got[1]["type"])
}

func TestFormatAllEmpty(t *testing.T) {
	assert.Nil(t, FormatAll("openai", nil))
	assert.Nil(t, FormatAll("openai", []Spec{}))
}

func TestFormatDoesNotMutateConfiguration(t *testing.T) {
	cfg := map[string]interface{}{"max_results": 5}
	FormatterFor("openai").Format(Spec{ToolType: "function", Configuration: cfg})

	assert.Equal(t, map[string]interface{}{"max_results": 5}, cfg)
}
