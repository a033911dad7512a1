package model

// 商品カテゴリ。Slugで一覧の絞り込みをする（jeans, accessories など）
type Category struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID *int64 `gorm:"index" json:"parent_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Slug     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
}
