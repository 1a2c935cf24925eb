package service

import (
	"PromptLib/models"
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyTagName = errors.New("tag name is empty")

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	// AddTag 已存在（忽略大小写）时返回已有标签
	AddTag(ctx context.Context, name string) (*models.Tag, error)
}

type TagService struct {
	Tags TagStore
}

func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.Tags.ListTags(ctx)
}

// AddTag 先查后插，并发下可能产生重复
func (s *TagService) AddTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	tags, err := s.Tags.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	for _, tag := range tags {
		if strings.EqualFold(tag.Name, name) {
			return tag, nil
		}
	}

	tag, err := s.Tags.InsertTag(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return tag, nil
}
