package db

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// InitMigrate 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Product{},
		&model.ProductColor{},
		&model.Coupon{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.Banner{},
	)
}

// ExecTx 執行一個交易  fn回傳錯誤就rollback
func (d *DbDao) ExecTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.WithContext(ctx).Transaction(fn)
}
