package usecase_test

import (
	"context"
	"sync"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"
)

// コミット時だけ反映されるインメモリのストア（ロールバック確認用）
type memStore struct {
	mu sync.Mutex

	variants    map[int64]model.ProductVariant
	products    map[int64]model.Product
	coupons     map[string]model.Coupon
	orders      []model.Order
	items       []model.OrderItem
	adjustments []model.InventoryAdjustment
	nextOrderID int64

	// 減算の直前に呼ばれる（他トランザクションの割り込みを再現）
	beforeDecrement func(s *memStore, variantID int64)
	txCount         int
}

func newMemStore() *memStore {
	return &memStore{
		variants:    map[int64]model.ProductVariant{},
		products:    map[int64]model.Product{},
		coupons:     map[string]model.Coupon{},
		nextOrderID: 1,
	}
}

func (s *memStore) addProduct(p model.Product, variants ...model.ProductVariant) {
	s.products[p.ID] = p
	for _, v := range variants {
		v.ProductID = p.ID
		s.variants[v.ID] = v
	}
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		variants:        map[int64]model.ProductVariant{},
		products:        s.products,
		coupons:         s.coupons,
		orders:          append([]model.Order{}, s.orders...),
		items:           append([]model.OrderItem{}, s.items...),
		adjustments:     append([]model.InventoryAdjustment{}, s.adjustments...),
		nextOrderID:     s.nextOrderID,
		beforeDecrement: s.beforeDecrement,
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	return c
}

func (s *memStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++

	work := s.clone()
	if err := fn(&memTx{s: work}); err != nil {
		return err
	}

	s.variants = work.variants
	s.orders = work.orders
	s.items = work.items
	s.adjustments = work.adjustments
	s.nextOrderID = work.nextOrderID
	return nil
}

func (s *memStore) stock(variantID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variants[variantID].Stock
}

type memTx struct{ s *memStore }

func (t *memTx) Orders() repo.OrderRepository         { return memOrders{t.s} }
func (t *memTx) OrderItems() repo.OrderItemRepository { return memOrderItems{t.s} }
func (t *memTx) Variants() repo.VariantRepository     { return memVariants{t.s} }
func (t *memTx) Products() repo.ProductRepository     { return memProducts{t.s} }
func (t *memTx) Inventory() repo.InventoryRepository  { return memInventory{t.s} }
func (t *memTx) Coupons() repo.CouponRepository       { return memCoupons{t.s} }

type memOrders struct{ s *memStore }

func (r memOrders) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	for _, o := range r.s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r memOrders) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	out := []model.Order{}
	for i := len(r.s.orders) - 1; i >= 0; i-- {
		if r.s.orders[i].UserID == userID {
			out = append(out, r.s.orders[i])
		}
	}
	return out, int64(len(out)), nil
}

func (r memOrders) Create(ctx context.Context, order model.Order) (int64, error) {
	order.ID = r.s.nextOrderID
	r.s.nextOrderID++
	r.s.orders = append(r.s.orders, order)
	return order.ID, nil
}

func (r memOrders) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	for _, o := range r.s.orders {
		if o.UserID == userID && o.IdempotencyKey != nil && *o.IdempotencyKey == key {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

type memOrderItems struct{ s *memStore }

func (r memOrderItems) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	for _, it := range items {
		it.OrderID = orderID
		it.ID = int64(len(r.s.items) + 1)
		r.s.items = append(r.s.items, it)
	}
	return nil
}

func (r memOrderItems) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	out := []model.OrderItem{}
	for _, it := range r.s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memVariants struct{ s *memStore }

func (r memVariants) FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error) {
	v, ok := r.s.variants[variantID]
	if !ok {
		return model.ProductVariant{}, repo.ErrNotFound
	}
	return v, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]repo.CatalogRow, int64, error) {
	return []repo.CatalogRow{}, 0, nil
}

func (r memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

type memInventory struct{ s *memStore }

func (r memInventory) DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error) {
	if r.s.beforeDecrement != nil {
		r.s.beforeDecrement(r.s, variantID)
	}
	v, ok := r.s.variants[variantID]
	if !ok || v.Stock < qty {
		return false, nil
	}
	v.Stock -= qty
	r.s.variants[variantID] = v
	return true, nil
}

func (r memInventory) CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error {
	r.s.adjustments = append(r.s.adjustments, adjustment)
	return nil
}

type memCoupons struct{ s *memStore }

func (r memCoupons) FindUsableByCode(ctx context.Context, code string, now time.Time) (model.Coupon, error) {
	c, ok := r.s.coupons[code]
	if !ok {
		return model.Coupon{}, repo.ErrNotFound
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return model.Coupon{}, repo.ErrNotFound
	}
	return c, nil
}
