package repository

import (
	"context"

	"fashionstore/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算（UPDATE ... WHERE stock >= qty）
	DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error)

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
