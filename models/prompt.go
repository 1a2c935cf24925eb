package models

import (
	"PromptLib/types"
	"time"

	"gorm.io/datatypes"
)

// Prompt 提示词条目，只在创建时写入，没有更新路径
type Prompt struct {
	ID               int64                       `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	OriginalPrompt   string                      `gorm:"type:text" json:"original_prompt"`
	TranslatedPrompt string                      `gorm:"type:text" json:"translated_prompt"`
	Summary          string                      `gorm:"type:text" json:"summary"`
	ImageURL         *string                     `gorm:"type:varchar(512)" json:"image_url"`
	AspectRatio      types.AspectRatio           `gorm:"type:varchar(8);default:'1:1'" json:"aspect_ratio"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`
	GenerationType   types.GenerationType        `gorm:"type:varchar(32)" json:"generation_type"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Prompt) TableName() string {
	return "prompts"
}

// HasTag 标签精确匹配
func (p *Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
