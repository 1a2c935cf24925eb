package dao

import (
	"PromptLib/models"
	"PromptLib/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type PromptDAO struct {
	Repo[models.Prompt]
}

func NewPromptDAO(db *gorm.DB) *PromptDAO {
	return &PromptDAO{Repo: NewRepo[models.Prompt](db)}
}

// ListPrompts 全量，按创建时间倒序
func (d *PromptDAO) ListPrompts(ctx context.Context) ([]*models.Prompt, error) {
	return d.FindAll(ctx, "created_at DESC")
}

// InsertPrompt 分配 id 后写入，created_at 由 gorm 填充
func (d *PromptDAO) InsertPrompt(ctx context.Context, prompt *models.Prompt) error {
	if prompt.ID == 0 {
		prompt.ID = snowflake.GenID()
	}
	if prompt.Tags == nil {
		prompt.Tags = []string{}
	}
	return d.Create(ctx, prompt)
}

func (d *PromptDAO) FindPrompt(ctx context.Context, id int64) (*models.Prompt, error) {
	return d.FindById(ctx, id)
}
