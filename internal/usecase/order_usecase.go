package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"
)

// 履歴は最新50件まで
const orderHistoryLimit = 50

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	VariantID  int64  `json:"variantId"`
	Name       string `json:"name"`
	Attributes string `json:"attributes"`
	Quantity   int64  `json:"qty"`
	UnitPrice  int64  `json:"unitPrice"`
	LineTotal  int64  `json:"lineTotal"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	Status          string            `json:"status"`
	Subtotal        int64             `json:"subtotal"`
	Discount        int64             `json:"discount"`
	ShippingFee     int64             `json:"shippingFee"`
	Total           int64             `json:"total"`
	ReceiverName    *string           `json:"receiverName"`
	ReceiverPhone   *string           `json:"receiverPhone"`
	ReceiverAddress *string           `json:"receiverAddress"`
	CreatedAt       time.Time         `json:"createdAt"`
	Items           []OrderItemOutput `json:"items"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	outs := []OrderOutput{}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, orderHistoryLimit)
		if err != nil {
			return dbError(err)
		}

		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return dbError(err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return dbError(err)
		}
		//他人の注文は「存在しない扱い」にする
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return dbError(err)
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			VariantID:  it.VariantID,
			Name:       it.ProductNameSnapshot,
			Attributes: it.AttributesSnapshot,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPriceSnapshot,
			LineTotal:  it.LineTotal,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		ShippingFee:     o.ShippingFee,
		Total:           o.Total,
		ReceiverName:    o.ReceiverName,
		ReceiverPhone:   o.ReceiverPhone,
		ReceiverAddress: o.ReceiverAddress,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
