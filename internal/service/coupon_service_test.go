package service

import (
	"testing"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func activeCoupon(t *testing.T) *model.Coupon {
	t.Helper()
	return &model.Coupon{
		CouponID:      uuid.New(),
		Code:          "SAVE10",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		Active:        true,
		StartDate:     time.Now().Add(-24 * time.Hour),
	}
}

func TestEvaluateCouponPercentage(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.DiscountValue = decimal.NewFromInt(25)

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(299), time.Now())
	require.True(t, eval.Applicable)
	// 25% of 299 = 74.75
	require.True(t, eval.DiscountAmount.Equal(decimal.NewFromFloat(74.75)), "got %s", eval.DiscountAmount)
}

func TestEvaluateCouponPercentageRounding(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.DiscountValue = decimal.NewFromInt(15)

	// 15% of 99.99 = 14.9985 -> rounds to 15.00
	eval := EvaluateCoupon(coupon, decimal.NewFromFloat(99.99), time.Now())
	require.True(t, eval.Applicable)
	require.True(t, eval.DiscountAmount.Equal(decimal.NewFromInt(15)), "got %s", eval.DiscountAmount)
}

func TestEvaluateCouponFixed(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.DiscountType = model.DiscountTypeFixed
	coupon.DiscountValue = decimal.NewFromInt(50)

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(300), time.Now())
	require.True(t, eval.Applicable)
	require.True(t, eval.DiscountAmount.Equal(decimal.NewFromInt(50)))
}

func TestEvaluateCouponDiscountClampedToSubtotal(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.DiscountType = model.DiscountTypeFixed
	coupon.DiscountValue = decimal.NewFromInt(500)

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(100), time.Now())
	require.True(t, eval.Applicable)
	require.True(t, eval.DiscountAmount.Equal(decimal.NewFromInt(100)))
}

func TestEvaluateCouponPercentageOverHundredClamped(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.DiscountValue = decimal.NewFromInt(150)

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(100), time.Now())
	require.True(t, eval.Applicable)
	require.True(t, eval.DiscountAmount.Equal(decimal.NewFromInt(100)))
}

func TestEvaluateCouponMinOrderAmount(t *testing.T) {
	minOrder := decimal.NewFromInt(200)
	coupon := activeCoupon(t)
	coupon.DiscountType = model.DiscountTypeFixed
	coupon.DiscountValue = decimal.NewFromInt(50)
	coupon.MinOrderAmount = &minOrder

	tests := []struct {
		name       string
		subtotal   decimal.Decimal
		applicable bool
		reason     RejectReason
	}{
		{"below minimum", decimal.NewFromInt(150), false, ReasonBelowMinimumOrder},
		{"exactly minimum", decimal.NewFromInt(200), true, ""},
		{"above minimum", decimal.NewFromInt(300), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluateCoupon(coupon, tt.subtotal, time.Now())
			require.Equal(t, tt.applicable, eval.Applicable)
			require.Equal(t, tt.reason, eval.Reason)
		})
	}
}

func TestEvaluateCouponDateWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name      string
		startDate time.Time
		endDate   *time.Time
		reason    RejectReason
	}{
		{"expired", past, &past, ReasonExpired},
		{"not yet active", future, nil, ReasonNotYetActive},
		{"no end date", past, nil, ""},
		{"inside window", past, &future, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := activeCoupon(t)
			coupon.StartDate = tt.startDate
			coupon.EndDate = tt.endDate

			eval := EvaluateCoupon(coupon, decimal.NewFromInt(300), now)
			require.Equal(t, tt.reason == "", eval.Applicable)
			require.Equal(t, tt.reason, eval.Reason)
		})
	}
}

func TestEvaluateCouponUsageLimit(t *testing.T) {
	maxUses := 5
	coupon := activeCoupon(t)
	coupon.MaxUses = &maxUses
	coupon.CurrentUses = 5

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(300), time.Now())
	require.False(t, eval.Applicable)
	require.Equal(t, ReasonUsageLimitReached, eval.Reason)

	coupon.CurrentUses = 4
	eval = EvaluateCoupon(coupon, decimal.NewFromInt(300), time.Now())
	require.True(t, eval.Applicable)
}

// 停用的折扣碼對外要跟不存在長得一樣  不能洩漏它其實存在
func TestEvaluateCouponInactiveLooksLikeNotFound(t *testing.T) {
	coupon := activeCoupon(t)
	coupon.Active = false

	eval := EvaluateCoupon(coupon, decimal.NewFromInt(300), time.Now())
	require.False(t, eval.Applicable)
	require.Equal(t, ReasonNotFound, eval.Reason)
}

func TestEvaluateCouponNil(t *testing.T) {
	eval := EvaluateCoupon(nil, decimal.NewFromInt(300), time.Now())
	require.False(t, eval.Applicable)
	require.Equal(t, ReasonNotFound, eval.Reason)
}

func TestEvaluateCouponZeroSubtotal(t *testing.T) {
	coupon := activeCoupon(t)

	eval := EvaluateCoupon(coupon, decimal.Zero, time.Now())
	require.True(t, eval.Applicable)
	require.True(t, eval.DiscountAmount.IsZero())
}
