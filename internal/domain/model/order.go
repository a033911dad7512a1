package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// 注文ヘッダ。作成後このフローでは変更しない。
type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64       `gorm:"not null;index;uniqueIndex:idx_orders_user_idem,priority:1" json:"user_id"`
	CouponID        *int64      `gorm:"index" json:"coupon_id"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal        int64       `gorm:"not null" json:"subtotal"`
	Discount        int64       `gorm:"not null" json:"discount"`
	ShippingFee     int64       `gorm:"not null" json:"shipping_fee"`
	Total           int64       `gorm:"not null" json:"total"`
	ReceiverName    *string     `gorm:"type:varchar(255)" json:"receiver_name"`
	ReceiverPhone   *string     `gorm:"type:varchar(30)" json:"receiver_phone"`
	ReceiverAddress *string     `gorm:"type:varchar(500)" json:"receiver_address"`
	IdempotencyKey  *string     `gorm:"type:varchar(255);uniqueIndex:idx_orders_user_idem,priority:2" json:"-"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
}
