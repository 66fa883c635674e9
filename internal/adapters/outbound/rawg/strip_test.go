package rawg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	payload := map[string]any{
		"count": 2.0,
		"tags":  []any{"top-level"},
		"results": []any{
			map[string]any{
				"name": "Elden Ring",
				"tags": []any{map[string]any{"id": 1.0}},
				"parent": map[string]any{
					"tags": []any{"nested"},
					"name": "parent",
				},
			},
		},
	}

	cleaned := StripTags(payload).(map[string]any)

	assert.NotContains(t, cleaned, "tags")
	game := cleaned["results"].([]any)[0].(map[string]any)
	assert.NotContains(t, game, "tags")
	assert.Equal(t, "Elden Ring", game["name"])
	parent := game["parent"].(map[string]any)
	assert.NotContains(t, parent, "tags")
}

func TestStripTags_Idempotent(t *testing.T) {
	payload := map[string]any{
		"results": []any{
			map[string]any{"name": "a", "tags": []any{"x"}},
			map[string]any{"name": "b"},
		},
	}

	once := StripTags(payload)
	twice := StripTags(once)
	assert.Equal(t, once, twice)
}

func TestStripTags_LeavesScalarsAlone(t *testing.T) {
	assert.Equal(t, "text", StripTags("text"))
	assert.Equal(t, 42.0, StripTags(42.0))
	assert.Nil(t, StripTags(nil))
}
