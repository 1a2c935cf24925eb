package imageproc

import (
	"PromptLib/types"
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.NRGBA{R: 200, G: 30, B: 90, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBucket_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want types.AspectRatio
	}{
		{"r=1.7", 170, 100, types.AspectRatio16x9},
		{"r=16/9", 1600, 900, types.AspectRatio16x9},
		{"just below 1.7", 169, 100, types.AspectRatio4x3},
		{"r=1.3", 130, 100, types.AspectRatio4x3},
		{"just below 1.3", 129, 100, types.AspectRatio1x1},
		{"square", 500, 500, types.AspectRatio1x1},
		{"just above 0.8", 81, 100, types.AspectRatio1x1},
		{"r=0.8", 80, 100, types.AspectRatio3x4},
		{"just above 0.6", 61, 100, types.AspectRatio3x4},
		{"r=0.6", 60, 100, types.AspectRatio9x16},
		{"tall", 900, 1600, types.AspectRatio9x16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Bucket(tc.w, tc.h))
		})
	}
}

func TestTargetSize(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{1600, 900, 800, 450},
		{900, 1600, 450, 800},
		{640, 480, 640, 480},
		{800, 800, 800, 800},
		{801, 801, 800, 800},
		{3000, 1000, 800, 267},
		{10000, 5, 800, 1},
	}
	for _, tc := range cases {
		w, h := TargetSize(tc.w, tc.h)
		assert.Equal(t, tc.wantW, w, "%dx%d", tc.w, tc.h)
		assert.Equal(t, tc.wantH, h, "%dx%d", tc.w, tc.h)
	}
}

func TestTargetSize_PreservesRatio(t *testing.T) {
	for _, dim := range [][2]int{{1920, 1080}, {1234, 4321}, {2048, 1536}, {999, 801}} {
		w, h := TargetSize(dim[0], dim[1])
		assert.Equal(t, MaxDimension, max(w, h))
		want := float64(dim[0]) / float64(dim[1])
		got := float64(w) / float64(h)
		assert.InEpsilon(t, want, got, 0.01)
	}
}

func TestProcess_Downscales(t *testing.T) {
	res, err := Process(bytes.NewReader(pngOf(t, 1600, 900)))
	require.NoError(t, err)

	assert.Equal(t, types.AspectRatio16x9, res.AspectRatio)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 450, res.Height)

	out, err := jpeg.Decode(bytes.NewReader(res.Payload))
	require.NoError(t, err)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 450, out.Bounds().Dy())

	assert.True(t, strings.HasPrefix(res.PreviewDataURI, "data:image/jpeg;base64,"))
}

func TestProcess_SmallImageKeepsSize(t *testing.T) {
	res, err := Process(bytes.NewReader(pngOf(t, 300, 400)))
	require.NoError(t, err)

	assert.Equal(t, types.AspectRatio3x4, res.AspectRatio)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(res.Payload))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestProcess_DecodeFailure(t *testing.T) {
	res, err := Process(strings.NewReader("definitely not an image"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDecode)
}
