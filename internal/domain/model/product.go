package model

import "time"

type Product struct {
	ID          int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  int64            `gorm:"not null;index" json:"category_id"`
	Category    Category         `gorm:"foreignKey:CategoryID" json:"-"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Brand       *string          `gorm:"type:varchar(255)" json:"brand"`
	Description *string          `gorm:"type:text" json:"description"`
	ListPrice   int64            `gorm:"not null;default:0" json:"list_price"` // 定価（旧価格）
	IsOnSale    bool             `gorm:"not null;default:false;index" json:"is_on_sale"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	CreatedAt   time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
}
