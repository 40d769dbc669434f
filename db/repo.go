package db

import (
	"context"
	"errors"

	"bookswap/models"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

var ErrEmailTaken = errors.New("email already registered")

// Users

// 注册：先按邮箱查重，再写入（邮箱上还有唯一索引兜底）
func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(u).Error
}

// 登录查询：邮箱+密码精确匹配，大小写敏感
func (r *Repo) FindUserByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}
