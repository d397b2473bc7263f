package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItemDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SelectedColor string          `json:"selected_color"`
	CustomName    string          `json:"custom_name,omitempty"`
	Quantity      int             `json:"quantity"`
}

type OrderDTO struct {
	OrderID       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	OrderStatus   string          `json:"order_status"`
	Notes         string          `json:"notes,omitempty"`
	OrderDate     time.Time       `json:"order_date"`
	Items         []OrderItemDTO  `json:"items"`
}

// TrackOrderDTO 公開的訂單追蹤  不回顧客個資以外的明細
type TrackOrderDTO struct {
	OrderID       string          `json:"order_id"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	Total         decimal.Decimal `json:"total"`
	OrderDate     time.Time       `json:"order_date"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type UpdatePaymentStatusDTO struct {
	Status string `json:"status"`
}

type PagingMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
