package service

import (
	"PromptLib/dao"
	"PromptLib/models"
	"context"
)

// PromptStore 提示词持久化
type PromptStore interface {
	ListPrompts(ctx context.Context) ([]*models.Prompt, error)
	InsertPrompt(ctx context.Context, prompt *models.Prompt) error
	FindPrompt(ctx context.Context, id int64) (*models.Prompt, error)
}

// TagStore 标签持久化
type TagStore interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	InsertTag(ctx context.Context, name string) (*models.Tag, error)
}

// AdminStore 管理员账号
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, email, passwordHash string) (*models.Admin, error)
}

var (
	_ PromptStore = (*dao.PromptDAO)(nil)
	_ TagStore    = (*dao.TagDAO)(nil)
	_ AdminStore  = (*dao.AdminDAO)(nil)
)
