package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func IsValidDiscountType(t string) bool {
	switch DiscountType(t) {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	default:
		return false
	}
}

// Coupon 折扣碼
// Code 一律以大寫儲存  查詢前先轉大寫
type Coupon struct {
	CouponID       uuid.UUID        `gorm:"type:uuid;primaryKey" json:"coupon_id"`
	Code           string           `gorm:"not null;uniqueIndex;type:varchar(50)" json:"code"`
	DiscountType   DiscountType     `gorm:"not null;type:varchar(20)" json:"discount_type"`
	DiscountValue  decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"discount_value"`
	MinOrderAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_order_amount,omitempty"`
	MaxUses        *int             `gorm:"null" json:"max_uses,omitempty"`
	CurrentUses    int              `gorm:"not null;default:0" json:"current_uses"`
	Active         bool             `gorm:"not null;default:true" json:"active"`
	StartDate      time.Time        `gorm:"not null" json:"start_date"`
	EndDate        *time.Time       `gorm:"null" json:"end_date,omitempty"`
	BaseModel
}
