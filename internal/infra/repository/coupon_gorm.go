package repository

import (
	"context"
	"errors"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"

	"gorm.io/gorm"
)

type CouponGormRepository struct {
	db *gorm.DB
}

func NewCouponGormRepository(db *gorm.DB) *CouponGormRepository {
	return &CouponGormRepository{db: db}
}

// 期限切れはDB側で弾く
func (r *CouponGormRepository) FindUsableByCode(ctx context.Context, code string, now time.Time) (model.Coupon, error) {
	var c model.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? AND (expires_at IS NULL OR expires_at > ?)", code, now).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Coupon{}, err
	}
	return c, nil
}
