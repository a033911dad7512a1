package handler

import (
	"net/http"
	"strconv"

	"fashionstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 二重送信防止キー（任意）
const HeaderIdempotencyKey = "Idempotency-Key"

type OrderHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	ordersUC   *usecase.OrderUsecase
}

func NewOrderHandler(checkoutUC *usecase.CheckoutUsecase, ordersUC *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC, ordersUC: ordersUC}
}

type cartItemRequest struct {
	VariantID int64  `json:"variantId"`
	Name      string `json:"name"`
	Qty       int64  `json:"qty"`
	PriceK    int64  `json:"priceK"`
}

type checkoutRequest struct {
	Items           []cartItemRequest `json:"items"`
	Coupon          string            `json:"coupon"`
	ReceiverName    string            `json:"receiverName"`
	ReceiverPhone   string            `json:"receiverPhone"`
	ReceiverAddress string            `json:"receiverAddress"`
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group, authMW echo.MiddlewareFunc) {
	g := api.Group("/orders", authMW)

	g.POST("/checkout", h.checkout)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
}

// checkout godoc
// @Summary      チェックアウト
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header  string           false  "same key returns the same order"
// @Param        body             body    checkoutRequest  true   "cart lines, coupon, receiver"
// @Success      200  {object}  usecase.CheckoutOutput
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /api/orders/checkout [post]
func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	lines := make([]usecase.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, usecase.CartLine{
			VariantID: it.VariantID,
			Name:      it.Name,
			Qty:       it.Qty,
			PriceK:    it.PriceK,
		})
	}

	out, err := h.checkoutUC.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		Items:           lines,
		Coupon:          req.Coupon,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		IdempotencyKey:  c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// list godoc
// @Summary      自分の注文履歴（最新50件）
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   usecase.OrderOutput
// @Failure      401  {object}  ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	out, err := h.ordersUC.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// detail godoc
// @Summary      自分の注文詳細
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "order id"
// @Success      200  {object}  usecase.OrderOutput
// @Failure      404  {object}  ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	out, err := h.ordersUC.GetMyOrderDetail(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
