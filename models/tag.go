package models

// Tag 分类标签，名称大小写不敏感唯一（由调用方保证）
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Name string `gorm:"type:varchar(64);not null" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}
