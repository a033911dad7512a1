package repository

import (
	"context"
	"errors"
	"strings"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"

	"gorm.io/gorm"
)

// ILIKEのワイルドカードを文字として扱う（エスケープ文字はPostgres既定のバックスラッシュ）
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 販売中の商品を、バリアント単位で絞り込んでから商品ごとに集約して返す。
func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]repo.CatalogRow, int64, error) {
	var total int64

	//total（集約後の件数）
	if err := r.db.WithContext(ctx).
		Table("(?) AS g", r.catalogQuery(ctx, q)).
		Count(&total).Error; err != nil {
		return []repo.CatalogRow{}, 0, err
	}

	tx := r.catalogQuery(ctx, q)

	//sort（指定なしはID順で安定させる）
	switch q.Sort {
	case "price-asc":
		tx = tx.Order("MIN(v.price) ASC").Order("p.id ASC")
	case "price-desc":
		tx = tx.Order("MIN(v.price) DESC").Order("p.id ASC")
	case "name-asc":
		tx = tx.Order("p.name ASC").Order("p.id ASC")
	case "name-desc":
		tx = tx.Order("p.name DESC").Order("p.id ASC")
	default:
		tx = tx.Order("p.id ASC")
	}

	rows := []repo.CatalogRow{}
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Scan(&rows).Error; err != nil {
		return []repo.CatalogRow{}, 0, err
	}

	return rows, total, nil
}

// 件数用と一覧用で毎回組み立てる（gormのStatementを共有しない）
func (r *ProductGormRepository) catalogQuery(ctx context.Context, q repo.ProductListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id AS id, p.name AS name, c.slug AS cat, MIN(v.price) AS price, p.list_price AS old, SUM(v.stock)::bigint AS stock").
		Joins("JOIN categories c ON c.id = p.category_id").
		Joins("JOIN product_variants v ON v.product_id = p.id").
		Where("p.is_on_sale = ?", true)

	// q nameを対象
	if s := strings.TrimSpace(q.Q); s != "" {
		tx = tx.Where("p.name ILIKE ?", "%"+likeEscaper.Replace(s)+"%")
	}

	// カテゴリ（slug）
	if len(q.Cats) > 0 {
		tx = tx.Where("c.slug IN ?", q.Cats)
	}

	//価格帯（バリアント単位）
	if q.MinPrice != nil {
		tx = tx.Where("v.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("v.price <= ?", *q.MaxPrice)
	}

	return tx.Group("p.id, p.name, c.slug, p.list_price")
}

// IDで商品を取得（カテゴリ・バリアント込み）
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
