package models

import "time"

const UserTable = "bs_users"

const (
	RoleOwner  = "Owner"  // may create/edit/delete listings
	RoleSeeker = "Seeker" // browses and rents/requests exchange
)

// User 注册档案。密码按原样存储（沿用前端约定，未做哈希）。
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`
	Mobile   string `gorm:"size:45" json:"mobile"`
	Role     string `gorm:"size:20;not null" json:"role"` // Owner / Seeker

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
