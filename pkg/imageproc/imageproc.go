// Package imageproc 上传前的图片预处理：计算比例档位、缩放到 800 以内并压缩为 JPEG
package imageproc

import (
	"PromptLib/types"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxDimension = 800
	Quality      = 70
	MimeType     = "image/jpeg"
)

var ErrDecode = errors.New("failed to load image")

type Result struct {
	PreviewDataURI string
	Payload        []byte
	AspectRatio    types.AspectRatio
	Width          int
	Height         int
}

// Process 解码 -> 比例档位 -> 缩放 -> JPEG 压缩
func Process(r io.Reader) (*Result, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	newW, newH := TargetSize(w, h)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	// JPEG 没有透明通道，先铺白底
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	payload := buf.Bytes()

	return &Result{
		PreviewDataURI: DataURI(payload),
		Payload:        payload,
		AspectRatio:    Bucket(w, h),
		Width:          newW,
		Height:         newH,
	}, nil
}

// Bucket 粗粒度比例档位，(0.8, 1.3) 之间归为 1:1
func Bucket(w, h int) types.AspectRatio {
	r := float64(w) / float64(h)
	switch {
	case r >= 1.7:
		return types.AspectRatio16x9
	case r >= 1.3:
		return types.AspectRatio4x3
	case r <= 0.6:
		return types.AspectRatio9x16
	case r <= 0.8:
		return types.AspectRatio3x4
	default:
		return types.AspectRatio1x1
	}
}

// TargetSize 任一边超过 MaxDimension 时按比例缩放，长边等于 MaxDimension
func TargetSize(w, h int) (int, int) {
	if w <= MaxDimension && h <= MaxDimension {
		return w, h
	}
	if w > h {
		return MaxDimension, scaleSide(h, w)
	}
	return scaleSide(w, h), MaxDimension
}

func scaleSide(side, larger int) int {
	n := int(math.Round(float64(side) / float64(larger) * MaxDimension))
	if n < 1 {
		n = 1
	}
	return n
}

func DataURI(payload []byte) string {
	return "data:" + MimeType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
