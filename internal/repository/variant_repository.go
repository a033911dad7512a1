package repository

import (
	"context"

	"fashionstore/internal/domain/model"
)

type VariantRepository interface {
	FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error)
}
