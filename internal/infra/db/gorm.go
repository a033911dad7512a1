package db

import (
	"fmt"
	"time"

	"fashionstore/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gdb, nil
}

// Migrate はテーブルを作成・更新する（依存順）
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductVariant{},
		&model.Coupon{},
		&model.Order{},
		&model.OrderItem{},
		&model.InventoryAdjustment{},
	)
}
