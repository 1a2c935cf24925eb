package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenerationType(t *testing.T) {
	g, err := ParseGenerationType("")
	require.NoError(t, err)
	assert.Equal(t, TextToImage, g)

	g, err = ParseGenerationType("Image To Image")
	require.NoError(t, err)
	assert.Equal(t, ImageToImage, g)

	_, err = ParseGenerationType("image-to-image")
	assert.ErrorIs(t, err, ErrUnknownGenerationType)
}

func TestAspectRatio_CSS(t *testing.T) {
	assert.Equal(t, "16 / 9", AspectRatio16x9.CSS())
	assert.Equal(t, "3 / 4", AspectRatio3x4.CSS())
	assert.Equal(t, "1 / 1", AspectRatio("").CSS())
}
