package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponKind int

const (
	CouponKindAmount  CouponKind = 0 // 定額
	CouponKindPercent CouponKind = 1 // 割合（%）
)

type Coupon struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Kind      CouponKind      `gorm:"not null" json:"kind"`
	Value     decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"value"`
	ExpiresAt *time.Time      `gorm:"index" json:"expires_at"`
}

// 期限なし、または now より後に切れるなら使える
func (c Coupon) UsableAt(now time.Time) bool {
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}
