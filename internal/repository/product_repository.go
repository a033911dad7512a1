package repository

import (
	"context"
	"errors"

	"fashionstore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（価格はVND）
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Cats     []string // カテゴリのslug
	MinPrice *int64
	MaxPrice *int64
	Sort     string // price-asc / price-desc / name-asc / name-desc / ""
}

// 商品ごとに集約した一覧の1行（最安バリアント価格・在庫合計）
type CatalogRow struct {
	ID    int64
	Name  string
	Cat   string
	Price int64
	Old   int64
	Stock int64
}

// 商品の取得だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]CatalogRow, int64, error)
	// カテゴリとバリアント込みで1件取得
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
