package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolInput_JSONSchema(t *testing.T) {
	input := ToolInput{
		Type: "object",
		Fields: map[string]ToolField{
			"action": {
				Type:        "string",
				Description: "The action to perform",
				Required:    true,
				Enum:        []string{"search", "details"},
			},
			"page_size": {
				Type:        "number",
				Description: "Number of results to return",
			},
			"numbers": {
				Type:  "array",
				Items: &ToolItems{Type: "number"},
			},
		},
	}

	schema := input.JSONSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"action"}, schema["required"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, properties, 3)

	action := properties["action"].(map[string]any)
	assert.Equal(t, "string", action["type"])
	assert.Equal(t, []string{"search", "details"}, action["enum"])

	numbers := properties["numbers"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "number"}, numbers["items"])
}

func TestParseToolInputSchema_RoundTrip(t *testing.T) {
	input := ToolInput{
		Type: "object",
		Fields: map[string]ToolField{
			"ratings": {
				Type:        "array",
				Description: "Array of rating objects",
				Required:    true,
				Items: &ToolItems{
					Type: "object",
					Fields: map[string]ToolField{
						"id":    {Type: "number", Required: true},
						"count": {Type: "number", Required: true},
						"title": {Type: "string"},
					},
				},
			},
			"ordering": {
				Type: "string",
				Enum: []string{"-rating", "rating"},
			},
		},
	}

	// Serialize through JSON so the parser sees the generic shapes it
	// receives from the tool-server protocol.
	encoded, err := json.Marshal(input.JSONSchema())
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(encoded, &generic))

	parsed := ParseToolInputSchema(generic)

	assert.Equal(t, "object", parsed.Type)
	require.Contains(t, parsed.Fields, "ratings")
	ratings := parsed.Fields["ratings"]
	assert.True(t, ratings.Required)
	require.NotNil(t, ratings.Items)
	assert.Equal(t, "object", ratings.Items.Type)
	assert.True(t, ratings.Items.Fields["id"].Required)
	assert.True(t, ratings.Items.Fields["count"].Required)
	assert.False(t, ratings.Items.Fields["title"].Required)

	ordering := parsed.Fields["ordering"]
	assert.Equal(t, []string{"-rating", "rating"}, ordering.Enum)
	assert.False(t, ordering.Required)
}
