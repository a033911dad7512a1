package db

import (
	"context"
	"fmt"

	"fashionstore/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 開発用のデモデータ。何度流しても重複しない
func Seed(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roles := []model.Role{
			{ID: 1, Name: "customer"},
			{ID: 2, Name: "admin"},
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}
		// IDを指定して入れたのでシーケンスを合わせる
		if err := tx.Exec("SELECT setval(pg_get_serial_sequence('roles', 'id'), (SELECT MAX(id) FROM roles))").Error; err != nil {
			return fmt.Errorf("seed roles sequence: %w", err)
		}

		cats := []model.Category{
			{Name: "Jeans", Slug: "jeans"},
			{Name: "Shirts", Slug: "shirts"},
			{Name: "Accessories", Slug: "accessories"},
		}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
			Create(&cats).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}

		catID := map[string]int64{}
		var stored []model.Category
		if err := tx.Find(&stored).Error; err != nil {
			return err
		}
		for _, c := range stored {
			catID[c.Slug] = c.ID
		}

		products := []struct {
			cat      string
			name     string
			list     int64
			variants []model.ProductVariant
		}{
			{"jeans", "Slim Fit Jeans", 550000, []model.ProductVariant{
				{Color: str("blue"), Size: str("30"), SKU: "JEAN-SLIM-BLU-30", Price: 450000, Stock: 20},
				{Color: str("blue"), Size: str("32"), SKU: "JEAN-SLIM-BLU-32", Price: 450000, Stock: 15},
				{Color: str("black"), Size: str("32"), SKU: "JEAN-SLIM-BLK-32", Price: 480000, Stock: 8},
			}},
			{"shirts", "Oxford Shirt", 0, []model.ProductVariant{
				{Color: str("white"), Size: str("M"), SKU: "SHIRT-OXF-WHT-M", Price: 320000, Stock: 30},
				{Color: str("white"), Size: str("L"), SKU: "SHIRT-OXF-WHT-L", Price: 320000, Stock: 12},
			}},
			{"accessories", "Leather Belt", 250000, []model.ProductVariant{
				{Color: str("brown"), SKU: "BELT-LTH-BRN", Price: 199500, Stock: 40},
			}},
		}
		for _, p := range products {
			var count int64
			if err := tx.Model(&model.ProductVariant{}).Where("sku = ?", p.variants[0].SKU).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := model.Product{
				CategoryID: catID[p.cat],
				Name:       p.name,
				ListPrice:  p.list,
				IsOnSale:   true,
				Variants:   p.variants,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", p.name, err)
			}
		}

		coupons := []model.Coupon{
			{Code: "SALE10", Kind: model.CouponKindPercent, Value: decimal.NewFromInt(10)},
			{Code: "GIAM20K", Kind: model.CouponKindAmount, Value: decimal.NewFromInt(20000)},
		}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
			Create(&coupons).Error; err != nil {
			return fmt.Errorf("seed coupons: %w", err)
		}

		return nil
	})
}

func str(s string) *string {
	return &s
}
