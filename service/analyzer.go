package service

import (
	"PromptLib/config"
	"PromptLib/pkg/log"
	"PromptLib/pkg/utils"
	"PromptLib/types"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var ErrEmptyText = errors.New("text is empty")

const fallbackSummaryLen = 50

var _ IAnalyzerClient = (*AnalyzerClient)(nil)

type IAnalyzerClient interface {
	// Analyze 翻译 + 摘要，分析接口不可用时返回原文降级结果，不返回错误
	Analyze(ctx context.Context, text string) (*types.AnalysisResult, error)
}

type AnalyzerClient struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewAnalyzerClient(conf *config.Config) *AnalyzerClient {
	return &AnalyzerClient{
		Endpoint:   conf.AnalyzerEndpoint(),
		HTTPClient: http.DefaultClient,
	}
}

func (a *AnalyzerClient) Analyze(ctx context.Context, text string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	result, err := a.request(ctx, text)
	if err != nil {
		log.L.Warn("analyze prompt failed, using fallback", zap.String("endpoint", a.Endpoint), zap.Error(err))
		return Fallback(text), nil
	}
	return result, nil
}

func (a *AnalyzerClient) request(ctx context.Context, text string) (*types.AnalysisResult, error) {
	body, err := json.Marshal(types.AnalyzeRequest{Text: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analyze endpoint status %d: %s", resp.StatusCode, detail)
	}

	var result types.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &result, nil
}

// Fallback 原文同时作为中英文，摘要取前 50 个字符
// 按 rune 计数，emoji 等四字节字符算一个
func Fallback(text string) *types.AnalysisResult {
	return &types.AnalysisResult{
		CN:      text,
		EN:      text,
		Summary: utils.Truncate(text, fallbackSummaryLen) + "...",
	}
}
