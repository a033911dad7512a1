package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	repo "fashionstore/internal/repository"
)

// カートの1行（保存しない）
type CartLine struct {
	VariantID int64
	Name      string // 表示用。明細には使わない
	Qty       int64
	PriceK    int64 // クライアントの価格（千VND）。照合だけに使う
}

type PricingValidator struct{}

func NewPricingValidator() *PricingValidator {
	return &PricingValidator{}
}

// 在庫と価格を確認して小計を返す。最初の不正行で止める
func (v *PricingValidator) Validate(ctx context.Context, r repo.TxRepos, lines []CartLine) (int64, error) {
	var subtotal int64

	for _, line := range lines {
		variant, err := r.Variants().FindByID(ctx, line.VariantID)
		if errors.Is(err, repo.ErrNotFound) {
			return 0, wrapHTTPError(http.StatusNotFound, CodeNotFound,
				fmt.Sprintf("variant %d not found", line.VariantID), ErrVariantNotFound)
		}
		if err != nil {
			return 0, dbError(err)
		}

		if line.Qty <= 0 || line.Qty > variant.Stock {
			return 0, wrapHTTPError(http.StatusBadRequest, CodeValidation,
				fmt.Sprintf("invalid quantity for %s", variant.SKU), ErrInvalidQuantity)
		}

		//価格はDBが正
		if toThousands(variant.Price) != line.PriceK {
			return 0, wrapHTTPError(http.StatusConflict, CodeConflict,
				"price changed, please reload your cart", ErrPriceMismatch)
		}

		subtotal += variant.Price * line.Qty
	}

	return subtotal, nil
}
