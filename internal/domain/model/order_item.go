package model

// 注文明細。購入時点の商品名・属性・単価を残す。
type OrderItem struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64  `gorm:"not null;index" json:"order_id"`
	ProductID           int64  `gorm:"not null;index" json:"product_id"`
	VariantID           int64  `gorm:"not null;index" json:"variant_id"`
	ProductNameSnapshot string `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	AttributesSnapshot  string `gorm:"type:varchar(255)" json:"attributes_snapshot"`
	Quantity            int64  `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot   int64  `gorm:"not null" json:"unit_price_snapshot"`
	LineTotal           int64  `gorm:"not null" json:"line_total"`
}
