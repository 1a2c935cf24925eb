package llm

import (
	"PromptLib/config"
	"PromptLib/pkg/log"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrEmptyResponse = errors.New("No response from model")
	ErrInvalidOutput = errors.New("model output is not a valid analysis object")
)

const promptTemplate = `Analyze this prompt for an AI image generator: "%s".
      1. If the input is Chinese, translate it to English. If English, translate to Chinese.
      2. Provide a very concise, one-sentence summary (under 20 words) describing the visual subject,use Chinese.

      Return a JSON object.`

var analysisSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"cn":      map[string]any{"type": "string", "description": "The prompt in Chinese"},
		"en":      map[string]any{"type": "string", "description": "The prompt in English"},
		"summary": map[string]any{"type": "string", "description": "A short one-sentence visual summary"},
	},
	"required":             []string{"cn", "en", "summary"},
	"additionalProperties": false,
}

type IPromptAnalyzer interface {
	// Analyze 返回模型输出的原始 JSON {cn, en, summary}
	Analyze(ctx context.Context, text string) ([]byte, error)
}

var _ IPromptAnalyzer = (*PromptAnalyzer)(nil)

type PromptAnalyzer struct {
	client openai.Client
	model  string
}

func NewPromptAnalyzer(conf *config.LLMConfig) *PromptAnalyzer {
	baseURL := conf.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultLLMBaseURL
	}
	model := conf.Model
	if model == "" {
		model = config.DefaultLLMModel
	}

	return &PromptAnalyzer{
		client: openai.NewClient(
			option.WithAPIKey(conf.APIKey),
			option.WithBaseURL(baseURL),
			// 不重试，失败直接交给调用方降级
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

func (a *PromptAnalyzer) Analyze(ctx context.Context, text string) ([]byte, error) {
	startTime := time.Now()
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, text)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "prompt_analysis",
					Schema: analysisSchema,
					Strict: openai.Bool(true),
				},
			},
		},
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to analyze prompt", zap.Error(err), zap.Duration("cost", time.Since(startTime)))
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	content := StripCodeFence(completion.Choices[0].Message.Content)
	if content == "" {
		return nil, ErrEmptyResponse
	}
	if err := Validate(content); err != nil {
		log.L.Warn("unexpected model output", zap.String("content", content), zap.Error(err))
		return nil, err
	}

	log.L.Info("analyze prompt", zap.String("model", a.model), zap.Duration("cost", time.Since(startTime)))
	return []byte(content), nil
}

// Validate 输出必须是 JSON 对象且 cn/en/summary 都是字符串
func Validate(content string) error {
	if !gjson.Valid(content) {
		return ErrInvalidOutput
	}
	res := gjson.Parse(content)
	if !res.IsObject() {
		return ErrInvalidOutput
	}
	for _, field := range []string{"cn", "en", "summary"} {
		if v := res.Get(field); !v.Exists() || v.Type != gjson.String {
			return fmt.Errorf("%w: missing %s", ErrInvalidOutput, field)
		}
	}
	return nil
}

// StripCodeFence 去掉模型偶尔包裹的 ```json ... ```
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
