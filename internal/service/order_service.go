package service

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
)

type IOrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, next model.PaymentStatus) error
}

type OrderService struct {
	orderRepo db.IOrderRepository
}

func NewOrderService(orderRepo db.IOrderRepository) IOrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, apperr.New(apperr.NotFoundCode, "order not found")
		}
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "orders are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	orders, total, err := s.orderRepo.GetOrdersPaginated(ctx, page, pageSize)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, 0, apperr.New(apperr.FeatureNotProvisionedCode, "orders are not set up yet")
		}
		return nil, 0, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return orders, total, nil
}

// UpdateOrderStatus 訂單狀態轉移
// 只允許 placed -> confirmed -> ready -> completed
// 取消只能在placed或confirmed階段
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if !order.OrderStatus.CanTransitionTo(next) {
		return apperr.Newf(apperr.InvalidStateCode, "cannot transition order from %s to %s", order.OrderStatus, next)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, next); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

// UpdatePaymentStatus 付款狀態獨立於訂單狀態  只能從pending出發
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, next model.PaymentStatus) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if !order.PaymentStatus.CanTransitionTo(next) {
		return apperr.Newf(apperr.InvalidStateCode, "cannot transition payment from %s to %s", order.PaymentStatus, next)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, id, next); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
