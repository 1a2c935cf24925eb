package models

// All 需要迁移的表
func All() []any {
	return []any{&Prompt{}, &Tag{}, &Admin{}}
}
