package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_JSON(t *testing.T) {
	p := Prompt{ID: 1234567890123, OriginalPrompt: "一只猫", Tags: []string{"动物"}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "1234567890123", m["id"])
	assert.Nil(t, m["image_url"])
	assert.Equal(t, []any{"动物"}, m["tags"])
}

func TestPrompt_HasTag(t *testing.T) {
	p := Prompt{Tags: []string{"Anime", "Portrait"}}
	assert.True(t, p.HasTag("Anime"))
	assert.False(t, p.HasTag("anime"))
	assert.False(t, p.HasTag("Landscape"))
}
