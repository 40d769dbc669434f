// models/book.go
package models

import "time"

const BookTable = "bs_books"

const (
	ModeRent     = "Rent"
	ModeExchange = "Exchange"
)

type Book struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string  `gorm:"size:255;not null" json:"title"`
	Author   string  `gorm:"size:255" json:"author"`
	Genre    string  `gorm:"size:120" json:"genre"`
	Email    string  `gorm:"size:255" json:"email"`    // 联系方式：邮箱或电话至少一个
	Phone    string  `gorm:"size:45" json:"phone"`
	Location string  `gorm:"size:255" json:"location"`
	Mode     string  `gorm:"size:20;not null" json:"mode"` // Rent / Exchange
	Price    float64 `gorm:"not null;default:0" json:"price"` // Exchange 时恒为 0

	// 所属用户；不做外键级联，删用户不清理其书目
	UserID string `gorm:"type:uuid;index" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return BookTable }
