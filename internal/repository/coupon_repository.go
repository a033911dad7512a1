package repository

import (
	"context"
	"time"

	"fashionstore/internal/domain/model"
)

type CouponRepository interface {
	// コード完全一致かつ期限内（期限なし or expires_at > now）。無ければErrNotFound
	FindUsableByCode(ctx context.Context, code string, now time.Time) (model.Coupon, error)
}
