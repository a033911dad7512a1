package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"
)

// 送料（固定）
const ShippingFee int64 = 30000

const adjustmentReasonCheckout = "checkout"

type Receiver struct {
	Name    string
	Phone   string
	Address string
}

type AssembleInput struct {
	UserID         int64
	Lines          []CartLine
	Subtotal       int64
	Discount       int64
	Coupon         *model.Coupon
	Receiver       Receiver
	IdempotencyKey string
	Now            time.Time
}

type OrderAssembler struct{}

func NewOrderAssembler() *OrderAssembler {
	return &OrderAssembler{}
}

// 注文ヘッダを先に作り、行ごとに在庫を減らして明細を残す
func (a *OrderAssembler) Assemble(ctx context.Context, r repo.TxRepos, in AssembleInput) (model.Order, []model.OrderItem, error) {
	order := model.Order{
		UserID:          in.UserID,
		Status:          model.OrderStatusPending,
		Subtotal:        in.Subtotal,
		Discount:        in.Discount,
		ShippingFee:     ShippingFee,
		Total:           orderTotal(in.Subtotal, in.Discount, ShippingFee),
		ReceiverName:    optionalString(in.Receiver.Name),
		ReceiverPhone:   optionalString(in.Receiver.Phone),
		ReceiverAddress: optionalString(in.Receiver.Address),
		IdempotencyKey:  optionalString(in.IdempotencyKey),
		CreatedAt:       in.Now,
	}
	if in.Coupon != nil {
		couponID := in.Coupon.ID
		order.CouponID = &couponID
	}

	orderID, err := r.Orders().Create(ctx, order)
	if err != nil {
		return model.Order{}, nil, dbError(err)
	}
	order.ID = orderID

	// 同じ商品の名前は1回だけ引く
	names := map[int64]string{}
	items := make([]model.OrderItem, 0, len(in.Lines))

	for _, line := range in.Lines {
		variant, err := r.Variants().FindByID(ctx, line.VariantID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, nil, wrapHTTPError(http.StatusNotFound, CodeNotFound,
				fmt.Sprintf("variant %d not found", line.VariantID), ErrVariantNotFound)
		}
		if err != nil {
			return model.Order{}, nil, dbError(err)
		}

		name, ok := names[variant.ProductID]
		if !ok {
			p, err := r.Products().FindByID(ctx, variant.ProductID)
			if err != nil {
				return model.Order{}, nil, dbError(err)
			}
			name = p.Name
			names[variant.ProductID] = name
		}

		//在庫減算（足りないなら false）
		decreased, err := r.Inventory().DecreaseStockIfEnough(ctx, variant.ID, line.Qty)
		if err != nil {
			return model.Order{}, nil, dbError(err)
		}
		if !decreased {
			return model.Order{}, nil, wrapHTTPError(http.StatusConflict, CodeConflict,
				fmt.Sprintf("insufficient stock for %s", variant.SKU), ErrInsufficientStock)
		}

		if err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
			VariantID:   variant.ID,
			OrderID:     &orderID,
			ActorUserID: in.UserID,
			Delta:       -line.Qty,
			Reason:      adjustmentReasonCheckout,
			CreatedAt:   in.Now,
		}); err != nil {
			return model.Order{}, nil, dbError(err)
		}

		//スナップショット
		items = append(items, model.OrderItem{
			OrderID:             orderID,
			ProductID:           variant.ProductID,
			VariantID:           variant.ID,
			ProductNameSnapshot: name,
			AttributesSnapshot:  variant.Attributes(),
			Quantity:            line.Qty,
			UnitPriceSnapshot:   variant.Price,
			LineTotal:           variant.Price * line.Qty,
		})
	}

	//注文明細一括作成
	if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
		return model.Order{}, nil, dbError(err)
	}

	return order, items, nil
}

// total = max(0, subtotal - discount + shipping)
func orderTotal(subtotal, discount, shipping int64) int64 {
	total := subtotal - discount + shipping
	if total < 0 {
		return 0
	}
	return total
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
