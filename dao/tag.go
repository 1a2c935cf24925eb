package dao

import (
	"PromptLib/models"
	"PromptLib/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// ListTags 按名称升序
func (d *TagDAO) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return d.FindAll(ctx, "name ASC")
}

func (d *TagDAO) InsertTag(ctx context.Context, name string) (*models.Tag, error) {
	tag := &models.Tag{ID: snowflake.GenID(), Name: name}
	if err := d.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
