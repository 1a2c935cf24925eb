package service

import (
	"PromptLib/models"
	"PromptLib/pkg/imageproc"
	"PromptLib/pkg/log"
	"PromptLib/pkg/utils"
	"PromptLib/types"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrEmptyEntry 文本和图片都为空
	ErrEmptyEntry  = errors.New("text or image is required")
	ErrImageDecode = errors.New("failed to decode image")
)

const imageOnlySummary = "Image-based prompt"

var _ IPromptService = (*PromptService)(nil)

type IPromptService interface {
	// CreatePrompt 分析 -> 预处理图片 -> 上传 -> 写库
	CreatePrompt(ctx context.Context, in *types.CreatePromptInput) (*models.Prompt, error)
}

type PromptService struct {
	Analyzer IAnalyzerClient
	Storage  IOssService
	Prompts  PromptStore
	Tags     ITagService
}

func (s *PromptService) CreatePrompt(ctx context.Context, in *types.CreatePromptInput) (*models.Prompt, error) {
	text := strings.TrimSpace(in.Text)
	hasImage := in.Image != nil && len(in.Image.Data) > 0
	if text == "" && !hasImage {
		return nil, ErrEmptyEntry
	}

	generationType, err := types.ParseGenerationType(string(in.GenerationType))
	if err != nil {
		return nil, err
	}
	newTag := strings.TrimSpace(in.NewTag)

	analysis := &types.AnalysisResult{Summary: imageOnlySummary}
	if text != "" {
		analysis, err = s.Analyzer.Analyze(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
	}

	prompt := &models.Prompt{
		OriginalPrompt:   text,
		TranslatedPrompt: Translated(text, analysis),
		Summary:          analysis.Summary,
		AspectRatio:      types.AspectRatio1x1,
		Tags:             append([]string{}, in.Tags...),
		GenerationType:   generationType,
	}

	var stored *types.StoredObject
	if hasImage {
		processed, err := imageproc.Process(bytes.NewReader(in.Image.Data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
		}
		stored, err = s.Storage.UploadImage(ctx, processed.Payload)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		prompt.AspectRatio = processed.AspectRatio
		prompt.ImageURL = &stored.URL
	}

	// 新标签放在预处理和上传之后，校验失败不会留下标签
	if newTag != "" {
		tag, err := s.Tags.AddTag(ctx, newTag)
		if err != nil {
			s.cleanup(ctx, stored)
			return nil, fmt.Errorf("add tag: %w", err)
		}
		prompt.Tags = appendUnique(prompt.Tags, tag.Name)
	}

	if err := s.Prompts.InsertPrompt(ctx, prompt); err != nil {
		s.cleanup(ctx, stored)
		return nil, fmt.Errorf("insert prompt: %w", err)
	}

	log.L.Info("prompt saved",
		zap.Int64("id", prompt.ID),
		zap.String("aspect_ratio", string(prompt.AspectRatio)),
		zap.Bool("has_image", hasImage),
	)
	return prompt, nil
}

// cleanup 尽量删掉已上传的图片
func (s *PromptService) cleanup(ctx context.Context, stored *types.StoredObject) {
	if stored == nil {
		return
	}
	if err := s.Storage.Delete(ctx, stored.Key); err != nil {
		log.L.Warn("failed to delete orphan image", zap.String("key", stored.Key), zap.Error(err))
	}
}

func appendUnique(tags []string, name string) []string {
	for _, t := range tags {
		if t == name {
			return tags
		}
	}
	return append(tags, name)
}

// Translated 原文含中文取英文译文，否则取中文译文
func Translated(original string, analysis *types.AnalysisResult) string {
	if utils.ContainsHan(original) {
		return analysis.EN
	}
	return analysis.CN
}
