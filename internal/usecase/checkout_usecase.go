package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fashionstore/internal/domain/model"
	"fashionstore/internal/logger"
	repo "fashionstore/internal/repository"

	"go.uber.org/zap"
)

// チェックアウト結果（メトリクスのラベル）
const (
	CheckoutResultSuccess           = "success"
	CheckoutResultReplayed          = "replayed"
	CheckoutResultEmptyCart         = "empty_cart"
	CheckoutResultNotFound          = "not_found"
	CheckoutResultInvalidQuantity   = "invalid_quantity"
	CheckoutResultPriceMismatch     = "price_mismatch"
	CheckoutResultInsufficientStock = "insufficient_stock"
	CheckoutResultError             = "error"
)

const EventTypeOrderPlaced = "order.placed"

type CheckoutInput struct {
	Items           []CartLine
	Coupon          string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	IdempotencyKey  string
}

type CheckoutOutput struct {
	OrderID  int64 `json:"orderId"`
	TotalVnd int64 `json:"totalVnd"`
}

type OrderPlacedItem struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

type OrderPlacedEvent struct {
	Type        string            `json:"type"`
	OrderID     int64             `json:"order_id"`
	UserID      int64             `json:"user_id"`
	CouponID    *int64            `json:"coupon_id,omitempty"`
	Subtotal    int64             `json:"subtotal"`
	Discount    int64             `json:"discount"`
	ShippingFee int64             `json:"shipping_fee"`
	Total       int64             `json:"total"`
	Items       []OrderPlacedItem `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
}

type CheckoutUsecase struct {
	tx        repo.TransactionManager
	validator *PricingValidator
	coupons   *CouponResolver
	assembler *OrderAssembler
	cache     Cache
	events    EventPublisher
	recorder  CheckoutRecorder
	clock     Clock
}

// DI（cache/events/recorderはnilなら何もしない）
func NewCheckoutUsecase(
	tx repo.TransactionManager,
	cache Cache,
	events EventPublisher,
	recorder CheckoutRecorder,
	clock Clock,
) *CheckoutUsecase {
	if cache == nil {
		cache = noopCache{}
	}
	if events == nil {
		events = noopPublisher{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &CheckoutUsecase{
		tx:        tx,
		validator: NewPricingValidator(),
		coupons:   NewCouponResolver(),
		assembler: NewOrderAssembler(),
		cache:     cache,
		events:    events,
		recorder:  recorder,
		clock:     clock,
	}
}

// 検証→クーポン→注文作成を1トランザクションで行う
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	out, err := u.checkout(ctx, userID, in)
	if err != nil {
		u.recorder.ObserveCheckout(checkoutResult(err))
		return CheckoutOutput{}, err
	}
	return out, nil
}

func (u *CheckoutUsecase) checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return CheckoutOutput{}, wrapHTTPError(http.StatusBadRequest, CodeValidation, "cart empty", ErrEmptyCart)
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if len(key) > 255 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency key")
	}

	now := u.clock.Now()

	var (
		order    model.Order
		items    []model.OrderItem
		replayed bool
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		if key != "" {
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err != nil {
				return dbError(err)
			}
			if found {
				order = existing
				replayed = true
				return nil
			}
		}

		subtotal, err := u.validator.Validate(ctx, r, in.Items)
		if err != nil {
			return err
		}

		coupon, discount, err := u.coupons.Resolve(ctx, r, in.Coupon, subtotal, now)
		if err != nil {
			return err
		}

		order, items, err = u.assembler.Assemble(ctx, r, AssembleInput{
			UserID:   userID,
			Lines:    in.Items,
			Subtotal: subtotal,
			Discount: discount,
			Coupon:   coupon,
			Receiver: Receiver{
				Name:    in.ReceiverName,
				Phone:   in.ReceiverPhone,
				Address: in.ReceiverAddress,
			},
			IdempotencyKey: key,
			Now:            now,
		})
		return err
	})
	if err != nil {
		// 同じキーの同時リクエストが先にコミットしていたらそれを返す
		if key != "" && isStoreError(err) {
			if existing, ok := u.findByKey(ctx, userID, key); ok {
				u.recorder.ObserveCheckout(CheckoutResultReplayed)
				return CheckoutOutput{OrderID: existing.ID, TotalVnd: existing.Total}, nil
			}
		}
		return CheckoutOutput{}, err
	}

	if replayed {
		u.recorder.ObserveCheckout(CheckoutResultReplayed)
		return CheckoutOutput{OrderID: order.ID, TotalVnd: order.Total}, nil
	}

	u.afterCommit(ctx, order, items)
	u.recorder.ObserveCheckout(CheckoutResultSuccess)

	return CheckoutOutput{OrderID: order.ID, TotalVnd: order.Total}, nil
}

func (u *CheckoutUsecase) findByKey(ctx context.Context, userID int64, key string) (model.Order, bool) {
	var existing model.Order
	var found bool
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, ok, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		existing, found = o, ok
		return err
	})
	if err != nil {
		return model.Order{}, false
	}
	return existing, found
}

// コミット後の処理。失敗してもチェックアウトは成功のまま
func (u *CheckoutUsecase) afterCommit(ctx context.Context, order model.Order, items []model.OrderItem) {
	log := logger.FromCtx(ctx).With(zap.Int64("order_id", order.ID))

	keys := []string{}
	seen := map[int64]bool{}
	for _, it := range items {
		if seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		keys = append(keys, ProductCacheKey(it.ProductID))
	}
	if len(keys) > 0 {
		if err := u.cache.Del(ctx, keys...); err != nil {
			log.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}

	if err := u.events.PublishJSON(ctx, strconv.FormatInt(order.ID, 10), toOrderPlacedEvent(order, items)); err != nil {
		log.Warn("order event publish failed", zap.Error(err))
	}

	log.Info("order placed",
		zap.Int64("user_id", order.UserID),
		zap.Int64("total", order.Total),
		zap.Int("lines", len(items)),
	)
}

func toOrderPlacedEvent(o model.Order, items []model.OrderItem) OrderPlacedEvent {
	evItems := make([]OrderPlacedItem, 0, len(items))
	for _, it := range items {
		evItems = append(evItems, OrderPlacedItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPriceSnapshot,
		})
	}
	return OrderPlacedEvent{
		Type:        EventTypeOrderPlaced,
		OrderID:     o.ID,
		UserID:      o.UserID,
		CouponID:    o.CouponID,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		ShippingFee: o.ShippingFee,
		Total:       o.Total,
		Items:       evItems,
		CreatedAt:   o.CreatedAt,
	}
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, ErrEmptyCart):
		return CheckoutResultEmptyCart
	case errors.Is(err, ErrVariantNotFound):
		return CheckoutResultNotFound
	case errors.Is(err, ErrInvalidQuantity):
		return CheckoutResultInvalidQuantity
	case errors.Is(err, ErrPriceMismatch):
		return CheckoutResultPriceMismatch
	case errors.Is(err, ErrInsufficientStock):
		return CheckoutResultInsufficientStock
	default:
		return CheckoutResultError
	}
}

// 業務エラー以外（DB由来）
func isStoreError(err error) bool {
	he, ok := AsHTTPError(err)
	if !ok {
		return true
	}
	return he.Status >= http.StatusInternalServerError
}
