package models

import "time"

// Admin 管理员账号
type Admin struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Email     string    `gorm:"type:varchar(128);uniqueIndex:idx_admins_email;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
