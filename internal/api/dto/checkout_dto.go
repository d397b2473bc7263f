package dto

import (
	"github.com/shopspring/decimal"
)

type CheckoutRequestDTO struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	PaymentMethod string `json:"payment_method"`
	CouponCode    string `json:"coupon_code,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type CheckoutResponseDTO struct {
	OrderID  string          `json:"order_id"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	// UPI付款時前端用這個id組QR  付款確認仍由admin手動
	UpiID    string   `json:"upi_id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

type ApplyCouponDTO struct {
	Code string `json:"code"`
}

type CouponEvaluationDTO struct {
	Applicable     bool            `json:"applicable"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         string          `json:"reason,omitempty"`
}
