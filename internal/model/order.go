package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUpi  PaymentMethod = "upi"
)

func IsValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodCash, PaymentMethodUpi:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 訂單狀態只能往前走  取消只允許在備貨開始前
var orderStatusFlow = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// 付款狀態與訂單狀態各自獨立
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}
	return next == PaymentStatusConfirmed || next == PaymentStatusCancelled
}

type Order struct {
	OrderID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"order_id"`
	CustomerName  string          `gorm:"not null;type:varchar(100)" json:"customer_name"`
	CustomerEmail string          `gorm:"not null;type:varchar(200);index" json:"customer_email"`
	CustomerPhone string          `gorm:"not null;type:varchar(30)" json:"customer_phone"`
	Subtotal      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	Discount      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"discount"`
	Total         decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total"`
	// 下單當下使用的折扣碼  純文字快照  不是外鍵
	CouponCode    *string       `gorm:"type:varchar(50)" json:"coupon_code,omitempty"`
	PaymentMethod PaymentMethod `gorm:"not null;type:varchar(20)" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"not null;type:varchar(20);default:'pending'" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"not null;type:varchar(20);default:'placed';index" json:"order_status"`
	Notes         *string       `gorm:"type:text" json:"notes,omitempty"`
	OrderItems    []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	OrderDate     time.Time     `gorm:"not null" json:"order_date"`
	BaseModel
}

// OrderItem 下單當下的商品快照
// 商品之後被修改或下架不影響歷史訂單
type OrderItem struct {
	OrderItemID   uint            `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName   string          `gorm:"not null;type:varchar(200)" json:"product_name"`
	UnitPrice     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	SelectedColor string          `gorm:"not null;type:varchar(50)" json:"selected_color"`
	CustomName    *string         `gorm:"type:varchar(100)" json:"custom_name,omitempty"`
	Quantity      int             `gorm:"not null" json:"quantity"`
}
