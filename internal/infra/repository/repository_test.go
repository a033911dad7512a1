package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestInventory_DecreaseStockIfEnough(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewInventoryGormRepository(gdb)
	ctx := context.Background()

	t.Run("Enough", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "product_variants" SET "stock"=stock - \$1 WHERE id = \$2 AND stock >= \$3`).
			WithArgs(int64(3), int64(5), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := r.DecreaseStockIfEnough(ctx, 5, 3)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NotEnough", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "product_variants" SET "stock"=stock - \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := r.DecreaseStockIfEnough(ctx, 5, 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "product_variants"`).
			WillReturnError(errors.New("db error"))

		ok, err := r.DecreaseStockIfEnough(ctx, 5, 1)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUser_CreateMapsUniqueViolation(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserGormRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := r.Create(context.Background(), &model.User{Email: "a@example.com", PasswordHash: "x", RoleID: 1})
	assert.ErrorIs(t, err, repo.ErrEmailTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUser_CreateReturnsID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserGormRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	u := &model.User{Email: "a@example.com", PasswordHash: "x", RoleID: 1}
	require.NoError(t, r.Create(context.Background(), u))
	assert.Equal(t, int64(42), u.ID)
}

func TestUser_FindByEmailNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	u, err := r.FindByEmail(context.Background(), "nobody@example.com")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestCoupon_FindUsableByCode(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewCouponGormRepository(gdb)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "coupons" WHERE code = \$1 AND \(expires_at IS NULL OR expires_at > \$2\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "kind", "value", "expires_at"}).
				AddRow(1, "SALE10", 1, "10.00", nil))

		c, err := r.FindUsableByCode(context.Background(), "SALE10", now)
		require.NoError(t, err)
		assert.Equal(t, model.CouponKindPercent, c.Kind)
		assert.Equal(t, "10", c.Value.String())
		assert.Nil(t, c.ExpiresAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "coupons"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := r.FindUsableByCode(context.Background(), "NOPE", now)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestVariant_FindByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewVariantGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "product_variants" WHERE "product_variants"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "color", "size", "sku", "price", "stock"}).
			AddRow(5, 1, "blue", "32", "JEAN-BLU-32", 200000, 10))

	v, err := r.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "JEAN-BLU-32", v.SKU)
	assert.Equal(t, "blue/32", v.Attributes())

	mock.ExpectQuery(`SELECT \* FROM "product_variants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = r.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrder_FindByIdempotencyKey(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 AND idempotency_key = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total"}).AddRow(3, 7, 430000))

	o, found, err := r.FindByIdempotencyKey(context.Background(), 7, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(430000), o.Total)

	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, found, err = r.FindByIdempotencyKey(context.Background(), 7, "k2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrder_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := r.Create(context.Background(), model.Order{UserID: 7, Status: model.OrderStatusPending, Total: 130000, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestOrderItem_CreateBulkEmptyIsNoop(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderItemGormRepository(gdb)

	require.NoError(t, r.CreateBulk(context.Background(), 1, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProduct_ListPublic(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)
	minPrice := int64(100000)

	mock.ExpectQuery(`SELECT count\(\*\) FROM \(SELECT p\.id AS id.*FROM products AS p JOIN categories c ON c\.id = p\.category_id JOIN product_variants v ON v\.product_id = p\.id WHERE p\.is_on_sale = \$1 AND p\.name ILIKE \$2 AND c\.slug IN \(\$3,\$4\) AND v\.price >= \$5 GROUP BY p\.id, p\.name, c\.slug, p\.list_price\) AS g`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT p\.id AS id.*GROUP BY p\.id, p\.name, c\.slug, p\.list_price ORDER BY MIN\(v\.price\) DESC,p\.id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cat", "price", "old", "stock"}).
			AddRow(2, "Oxford Shirt", "shirts", 350000, 400000, 5).
			AddRow(1, "Slim Jeans", "jeans", 200000, 0, 12))

	rows, total, err := r.ListPublic(context.Background(), repo.ProductListQuery{
		Page:     1,
		Limit:    12,
		Q:        "s",
		Cats:     []string{"jeans", "shirts"},
		MinPrice: &minPrice,
		Sort:     "price-desc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, repo.CatalogRow{ID: 2, Name: "Oxford Shirt", Cat: "shirts", Price: 350000, Old: 400000, Stock: 5}, rows[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProduct_ListPublicEscapesWildcards(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .*p\.name ILIKE \$2`).
		WithArgs(true, `%50\%\_off\\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT p\.id AS id.*ORDER BY p\.id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cat", "price", "old", "stock"}))

	rows, total, err := r.ListPublic(context.Background(), repo.ProductListQuery{
		Page:  1,
		Limit: 12,
		Q:     `50%_off\`,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProduct_FindByIDPreloads(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name", "list_price", "is_on_sale"}).
			AddRow(1, 3, "Slim Jeans", 250000, true))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(3, "Jeans", "jeans"))
	mock.ExpectQuery(`SELECT \* FROM "product_variants" WHERE "product_variants"\."product_id" = \$1 ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "sku", "price", "stock"}).
			AddRow(5, 1, "JEAN-BLU-32", 200000, 10).
			AddRow(6, 1, "JEAN-BLK-32", 210000, 0))

	p, err := r.FindByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "jeans", p.Category.Slug)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, int64(6), p.Variants[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProduct_FindByIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	gdb, mock := newMockDB(t)
	tm := NewTxManagerGorm(gdb)
	stop := errors.New("stop")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "product_variants"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		ok, err := r.Inventory().DecreaseStockIfEnough(context.Background(), 5, 1)
		require.NoError(t, err)
		require.True(t, ok)
		return stop
	})

	assert.ErrorIs(t, err, stop)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_Commits(t *testing.T) {
	gdb, mock := newMockDB(t)
	tm := NewTxManagerGorm(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "coupons"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		_, err := r.Coupons().FindUsableByCode(context.Background(), "X", time.Now())
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	})

	assert.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRole_FindByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewRoleGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE "roles"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "customer"))

	role, err := r.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "customer", role.Name)

	mock.ExpectQuery(`SELECT \* FROM "roles"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = r.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
