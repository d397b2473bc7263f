package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/notification"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type SubmitRequest struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod model.PaymentMethod
	CouponCode    string
	Notes         string
}

type SubmitResult struct {
	OrderID  uuid.UUID
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	// soft failure警示 (COUPON_REDEEM_FAILED / NOTIFICATION_FAILED)
	// 有內容不代表下單失敗
	Warnings []string
}

type ICheckoutService interface {
	Submit(ctx context.Context, cartStore *cart.Store, req SubmitRequest) (*SubmitResult, error)
}

// CheckoutService 把購物車+折扣碼+顧客資料組成訂單送出
type CheckoutService struct {
	orderRepo  db.IOrderRepository
	couponSvc  ICouponService
	dispatcher *notification.Dispatcher
	logger     *zerolog.Logger
}

func NewCheckoutService(
	orderRepo db.IOrderRepository,
	couponSvc ICouponService,
	dispatcher *notification.Dispatcher,
	logger *zerolog.Logger,
) ICheckoutService {
	return &CheckoutService{
		orderRepo:  orderRepo,
		couponSvc:  couponSvc,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Submit 送出訂單
//
// header與items寫在同一個交易  任何一段失敗整筆rollback
// purchase失敗時購物車內容保持原樣  使用者可以直接重試
//
// 折扣碼redeem與通知都是best-effort  失敗只會出現在Warnings
func (s *CheckoutService) Submit(ctx context.Context, cartStore *cart.Store, req SubmitRequest) (*SubmitResult, error) {
	lines := cartStore.Lines()
	if len(lines) == 0 {
		return nil, apperr.New(apperr.EmptyCartCode, "cart is empty")
	}

	if err := validateCustomerFields(req); err != nil {
		return nil, err
	}

	subtotal := model.CartSubtotal(lines)

	// 折扣碼在送出當下重新評估  不信任前端算好的金額
	discount := decimal.Zero
	var couponCode *string
	if req.CouponCode != "" {
		eval, err := s.couponSvc.ApplyCode(ctx, req.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		if !eval.Applicable {
			return nil, apperr.Newf(apperr.InvalidArgumentCode, "coupon not applicable: %s", eval.Reason)
		}
		discount = eval.DiscountAmount
		code := strings.ToUpper(strings.TrimSpace(req.CouponCode))
		couponCode = &code
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	order := &model.Order{
		OrderID:       uuid.New(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		CouponCode:    couponCode,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.PaymentStatusPending,
		OrderStatus:   model.OrderStatusPlaced,
		OrderDate:     time.Now().UTC(),
		OrderItems:    snapshotOrderItems(lines),
	}
	if req.Notes != "" {
		notes := req.Notes
		order.Notes = &notes
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, db.ErrOrderItemsInsert) {
			return nil, apperr.New(apperr.OrderItemsFailedCode, err.Error())
		}
		return nil, apperr.New(apperr.OrderPersistFailedCode, err.Error())
	}

	result := &SubmitResult{
		OrderID:  order.OrderID,
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}

	if couponCode != nil {
		if err := s.couponSvc.RedeemCoupon(ctx, *couponCode); err != nil {
			// 訂單已成立  redeem失敗只警示
			if s.logger != nil {
				s.logger.Warn().
					Err(err).
					Str("order_id", order.OrderID.String()).
					Str("coupon_code", *couponCode).
					Msg("coupon redeem failed after order creation")
			}
			result.Warnings = append(result.Warnings, apperr.ErrStrMap[apperr.CouponRedeemFailedCode])
		}
	}

	if failed := s.dispatcher.DispatchOrderPlaced(ctx, buildOrderDetails(order)); len(failed) > 0 {
		result.Warnings = append(result.Warnings, apperr.ErrStrMap[apperr.NotificationFailedCode])
	}

	cartStore.Clear(ctx)

	return result, nil
}

func validateCustomerFields(req SubmitRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "customer name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.CustomerEmail)) {
		return apperr.New(apperr.InvalidArgumentCode, "customer email is invalid")
	}
	if len(strings.TrimSpace(req.CustomerPhone)) < 7 {
		return apperr.New(apperr.InvalidArgumentCode, "customer phone is invalid")
	}
	if !model.IsValidPaymentMethod(string(req.PaymentMethod)) {
		return apperr.Newf(apperr.InvalidArgumentCode, "invalid payment method: %s", req.PaymentMethod)
	}
	return nil
}

// snapshotOrderItems 把cart line複製成訂單項目快照
// copy by value  之後商品被編輯不會回頭改到歷史訂單
func snapshotOrderItems(lines []model.CartLine) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := model.OrderItem{
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			UnitPrice:     line.EffectiveUnitPrice(),
			SelectedColor: line.SelectedColor,
			Quantity:      line.Quantity,
		}
		if line.CustomName != "" {
			customName := line.CustomName
			item.CustomName = &customName
		}
		items = append(items, item)
	}
	return items
}

func buildOrderDetails(order *model.Order) *notification.OrderDetails {
	details := &notification.OrderDetails{
		OrderID:       order.OrderID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		PaymentMethod: string(order.PaymentMethod),
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
		PlacedAt:      order.OrderDate,
	}
	if order.CouponCode != nil {
		details.CouponCode = *order.CouponCode
	}
	for _, item := range order.OrderItems {
		detail := notification.OrderItemDetails{
			ProductName:   item.ProductName,
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		}
		if item.CustomName != nil {
			detail.CustomName = *item.CustomName
		}
		details.Items = append(details.Items, detail)
	}
	return details
}
