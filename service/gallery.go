package service

import (
	"PromptLib/models"
	"context"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

const CategoryAll = "All"

var _ IGalleryService = (*GalleryService)(nil)

type IGalleryService interface {
	// Load 拉取全部提示词与标签，每次页面访问调用一次
	Load(ctx context.Context) (*Gallery, error)
	Find(ctx context.Context, id int64) (*models.Prompt, error)
}

type Gallery struct {
	Prompts []*models.Prompt
	Tags    []*models.Tag
}

type GalleryService struct {
	Prompts PromptStore
	Tags    TagStore
}

func (s *GalleryService) Load(ctx context.Context) (*Gallery, error) {
	g := &Gallery{}
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		prompts, err := s.Prompts.ListPrompts(ctx)
		g.Prompts = prompts
		return err
	})
	p.Go(func(ctx context.Context) error {
		tags, err := s.Tags.ListTags(ctx)
		g.Tags = tags
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GalleryService) Find(ctx context.Context, id int64) (*models.Prompt, error) {
	return s.Prompts.FindPrompt(ctx, id)
}

// FilterPrompts 分类（标签精确匹配）与关键字（不区分大小写）同时满足
func FilterPrompts(prompts []*models.Prompt, category, query string) []*models.Prompt {
	query = strings.ToLower(query)
	out := make([]*models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if category != "" && category != CategoryAll && !p.HasTag(category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.OriginalPrompt), query) &&
			!strings.Contains(strings.ToLower(p.TranslatedPrompt), query) &&
			!strings.Contains(strings.ToLower(p.Summary), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories All + 全部标签名
func (g *Gallery) Categories() []string {
	out := make([]string, 0, len(g.Tags)+1)
	out = append(out, CategoryAll)
	for _, t := range g.Tags {
		out = append(out, t.Name)
	}
	return out
}
