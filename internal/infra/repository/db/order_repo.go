package db

import (
	"context"
	"fmt"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

var _ IOrderRepository = (*OrderRepo)(nil)

// CreateOrder 建立訂單
// header與items在同一個交易內寫入  items寫入失敗會rollback header
// 錯誤以ErrOrderInsert / ErrOrderItemsInsert區分是哪個階段失敗
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.ExecTx(ctx, func(tx *gorm.DB) error {
		items := order.OrderItems
		order.OrderItems = nil
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			order.OrderItems = items
			return fmt.Errorf("%w: %v", ErrOrderInsert, err)
		}
		order.OrderItems = items

		for i := range items {
			items[i].OrderID = order.OrderID
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&items, 100).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrOrderItemsInsert, err)
		}
		return nil
	})
}

func (s *OrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").First(&order, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersPaginated 分頁查詢訂單  新的在前
func (s *OrderRepo) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize

	if err := s.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.WithContext(ctx).Preload("OrderItems").
		Order("order_date DESC").
		Offset(offset).Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}

func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *OrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error {
	res := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
