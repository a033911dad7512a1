package model

import "fmt"

// 購入できる単位（色・サイズごと）。価格と在庫はここが正。
type ProductVariant struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Color     *string `gorm:"type:varchar(100)" json:"color"`
	Size      *string `gorm:"type:varchar(50)" json:"size"`
	SKU       string  `gorm:"column:sku;type:varchar(100);not null;uniqueIndex" json:"sku"`
	Price     int64   `gorm:"not null" json:"price"`
	Stock     int64   `gorm:"not null;check:stock >= 0" json:"stock"`
}

// 注文明細に残す属性（"color/size"）
func (v ProductVariant) Attributes() string {
	return fmt.Sprintf("%s/%s", deref(v.Color), deref(v.Size))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
