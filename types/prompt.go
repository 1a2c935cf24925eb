package types

import (
	"errors"
	"fmt"
)

var ErrUnknownGenerationType = errors.New("unknown generation type")

type GenerationType string

const (
	TextToImage  GenerationType = "Text To Image"
	ImageToImage GenerationType = "Image To Image"
)

// ParseGenerationType 空值默认文生图
func ParseGenerationType(s string) (GenerationType, error) {
	switch GenerationType(s) {
	case "":
		return TextToImage, nil
	case TextToImage, ImageToImage:
		return GenerationType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGenerationType, s)
	}
}

type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio3x4  AspectRatio = "3:4"
)

// CSS 卡片/详情页使用的 aspect-ratio 值
func (a AspectRatio) CSS() string {
	switch a {
	case AspectRatio16x9:
		return "16 / 9"
	case AspectRatio4x3:
		return "4 / 3"
	case AspectRatio9x16:
		return "9 / 16"
	case AspectRatio3x4:
		return "3 / 4"
	default:
		return "1 / 1"
	}
}

// AnalysisResult 翻译与摘要结果，不落库
type AnalysisResult struct {
	CN      string `json:"cn"`
	EN      string `json:"en"`
	Summary string `json:"summary"`
}

// ImageUpload 管理端提交的原始图片
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CreatePromptInput 管理端一次保存的输入
type CreatePromptInput struct {
	Text           string
	Tags           []string
	// NewTag 「+ New」输入，保存成功前不落库
	NewTag         string
	GenerationType GenerationType
	Image          *ImageUpload
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type CreatePromptRequest struct {
	Text           string   `json:"text" form:"text"`
	Tags           []string `json:"tags" form:"tags"`
	NewTag         string   `json:"new_tag" form:"new_tag"`
	GenerationType string   `json:"generation_type" form:"generation_type"`
	// ImageBase64 JSON 接口使用，可带 data URI 前缀
	ImageBase64 string `json:"image_base64" form:"-"`
}

type ListPromptsRequest struct {
	Category string `form:"category"`
	Query    string `form:"q"`
}
