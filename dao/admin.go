package dao

import (
	"PromptLib/models"
	"PromptLib/pkg/snowflake"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type AdminDAO struct {
	Repo[models.Admin]
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{Repo: NewRepo[models.Admin](db)}
}

// FindByEmail 不存在返回 nil, nil
func (d *AdminDAO) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, err := d.FindByWhere(ctx, "email = ?", normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return admin, err
}

func (d *AdminDAO) CreateAdmin(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	admin := &models.Admin{
		ID:       snowflake.GenID(),
		Email:    normalizeEmail(email),
		Password: passwordHash,
	}
	if err := d.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
