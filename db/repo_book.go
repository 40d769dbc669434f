// db/repo_book.go
package db

import (
	"context"
	"errors"

	"bookswap/models"

	"gorm.io/gorm"
)

var ErrBookNotFound = errors.New("book not found")

// Books

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBookByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

// 全量列表，不在服务端做筛选/分页，前端自行过滤
func (r *Repo) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&books).Error
	return books, err
}

// 部分更新：只覆盖传入的字段；找不到返回 ErrBookNotFound。
// 无乐观锁，两个并发更新后写覆盖先写。
func (r *Repo) UpdateBook(ctx context.Context, id string, fields map[string]any) (*models.Book, error) {
	var b models.Book
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&b).Updates(fields).Error; err != nil {
			return err
		}
		// 重新读一遍，带上数据库生成的 updated_at
		return tx.First(&b, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Book{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}
