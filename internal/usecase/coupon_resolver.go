package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type CouponResolver struct{}

func NewCouponResolver() *CouponResolver {
	return &CouponResolver{}
}

// 使えないコードはエラーにせず「クーポンなし」で続行する
func (c *CouponResolver) Resolve(ctx context.Context, r repo.TxRepos, code string, subtotal int64, now time.Time) (*model.Coupon, int64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, 0, nil
	}

	coupon, err := r.Coupons().FindUsableByCode(ctx, code, now)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, dbError(err)
	}
	if !coupon.UsableAt(now) {
		return nil, 0, nil
	}

	return &coupon, discountFor(coupon, subtotal), nil
}

// 割引額（ここでは小計で頭打ちにしない）
func discountFor(coupon model.Coupon, subtotal int64) int64 {
	switch coupon.Kind {
	case model.CouponKindPercent:
		return decimal.NewFromInt(subtotal).Mul(coupon.Value.Div(hundred)).RoundBank(0).IntPart()
	default:
		return coupon.Value.RoundBank(0).IntPart()
	}
}
