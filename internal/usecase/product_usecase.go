package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fashionstore/internal/logger"
	repo "fashionstore/internal/repository"

	"go.uber.org/zap"
)

// 評価テーブルはまだ無いので固定値
const catalogRating = 4.3

const maxPerPage = 100

func ProductCacheKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	cache       Cache
	cacheTTL    time.Duration
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, cache Cache, cacheTTL time.Duration) *ProductUsecase {
	if cache == nil {
		cache = noopCache{}
	}
	return &ProductUsecase{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// GET /productsの入力DTO（価格は千VND）
type ListProductsInput struct {
	Q    string
	Cats []string
	MinK *int64
	MaxK *int64
	Sort string
	Page int
	Per  int
}

type CatalogItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Cat    string  `json:"cat"`
	PriceK int64   `json:"priceK"`
	OldK   int64   `json:"oldK"`
	Stock  int64   `json:"stock"`
	Rating float64 `json:"rating"`
}

type ProductListOutput struct {
	Total int64         `json:"total"`
	Items []CatalogItem `json:"items"`
}

type VariantOutput struct {
	ID     int64   `json:"id"`
	Color  *string `json:"color"`
	Size   *string `json:"size"`
	PriceK int64   `json:"priceK"`
	Stock  int64   `json:"stock"`
	SKU    string  `json:"sku"`
}

type ProductDetailOutput struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Cat      string          `json:"cat"`
	Variants []VariantOutput `json:"variants"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Per < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid per")
	}
	// 大きすぎるperは上限に丸める
	if in.Per > maxPerPage {
		in.Per = maxPerPage
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinK != nil && *in.MinK < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minK must be >= 0")
	}
	if in.MaxK != nil && *in.MaxK < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "maxK must be >= 0")
	}
	if in.MinK != nil && in.MaxK != nil && *in.MinK > *in.MaxK {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minK must be <= maxK")
	}
	// 知らないsortはデフォルト順（id昇順）
	sortKey := in.Sort
	switch sortKey {
	case "price-asc", "price-desc", "name-asc", "name-desc":
	default:
		sortKey = ""
	}

	rows, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Per,
		Q:        strings.TrimSpace(in.Q),
		Cats:     in.Cats,
		MinPrice: kToVND(in.MinK),
		MaxPrice: kToVND(in.MaxK),
		Sort:     sortKey,
	})
	if err != nil {
		return ProductListOutput{}, dbError(err)
	}

	items := make([]CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CatalogItem{
			ID:     row.ID,
			Name:   row.Name,
			Cat:    row.Cat,
			PriceK: toThousands(row.Price),
			OldK:   toThousands(max(row.Old, 0)),
			Stock:  row.Stock,
			Rating: catalogRating,
		})
	}

	return ProductListOutput{
		Total: total,
		Items: items,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	key := ProductCacheKey(productID)
	log := logger.FromCtx(ctx)

	if raw, ok, err := u.cache.Get(ctx, key); err != nil {
		log.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var cached ProductDetailOutput
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, dbError(err)
	}

	variants := make([]VariantOutput, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantOutput{
			ID:     v.ID,
			Color:  v.Color,
			Size:   v.Size,
			PriceK: toThousands(v.Price),
			Stock:  v.Stock,
			SKU:    v.SKU,
		})
	}
	out := ProductDetailOutput{
		ID:       p.ID,
		Name:     p.Name,
		Cat:      p.Category.Slug,
		Variants: variants,
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := u.cache.Set(ctx, key, raw, u.cacheTTL); err != nil {
			log.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}

func kToVND(k *int64) *int64 {
	if k == nil {
		return nil
	}
	v := *k * 1000
	return &v
}
