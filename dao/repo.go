package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrBackendUnavailable 数据库未配置
var ErrBackendUnavailable = errors.New("storage backend is not configured")

// Repo 通用的 gorm 读写，Db 为 nil 时所有方法返回 ErrBackendUnavailable
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Available() bool {
	return r.Db != nil
}

func (r *Repo[T]) session(ctx context.Context) (*gorm.DB, error) {
	if r.Db == nil {
		return nil, ErrBackendUnavailable
	}
	return r.Db.WithContext(ctx), nil
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	return db.Create(data).Error
}

// FindAll order 为空时不排序
func (r *Repo[T]) FindAll(ctx context.Context, order string) ([]*T, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	if order != "" {
		db = db.Order(order)
	}
	items := make([]*T, 0)
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindById 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var item T
	if err := db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var item T
	if err := db.Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	db, err := r.session(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Model(new(T)).Where(where, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
