package service

import (
	"context"
	"strings"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RejectReason string

const (
	ReasonNotFound          RejectReason = "NOT_FOUND"
	ReasonExpired           RejectReason = "EXPIRED"
	ReasonNotYetActive      RejectReason = "NOT_YET_ACTIVE"
	ReasonUsageLimitReached RejectReason = "USAGE_LIMIT_REACHED"
	ReasonBelowMinimumOrder RejectReason = "BELOW_MINIMUM_ORDER"
)

// Evaluation 折扣碼評估結果
type Evaluation struct {
	Applicable     bool
	DiscountAmount decimal.Decimal
	Reason         RejectReason
}

func rejected(reason RejectReason) Evaluation {
	return Evaluation{Applicable: false, DiscountAmount: decimal.Zero, Reason: reason}
}

// EvaluateCoupon 純函數  只看(coupon, subtotal, now)
// 檢查順序: active -> 過期 -> 尚未生效 -> 用量 -> 低消
// 停用的折扣碼對外等同不存在
//
// 百分比折扣四捨五入到小數兩位 (round half away from zero, decimal.Round預設行為)
// 折扣金額不會超過小計  訂單金額不會變負數
func EvaluateCoupon(coupon *model.Coupon, subtotal decimal.Decimal, now time.Time) Evaluation {
	if coupon == nil || !coupon.Active {
		return rejected(ReasonNotFound)
	}
	if coupon.EndDate != nil && now.After(*coupon.EndDate) {
		return rejected(ReasonExpired)
	}
	if now.Before(coupon.StartDate) {
		return rejected(ReasonNotYetActive)
	}
	if coupon.MaxUses != nil && coupon.CurrentUses >= *coupon.MaxUses {
		return rejected(ReasonUsageLimitReached)
	}
	if coupon.MinOrderAmount != nil && subtotal.LessThan(*coupon.MinOrderAmount) {
		return rejected(ReasonBelowMinimumOrder)
	}

	var discount decimal.Decimal
	switch coupon.DiscountType {
	case model.DiscountTypePercentage:
		discount = subtotal.Mul(coupon.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		discount = coupon.DiscountValue
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return Evaluation{Applicable: true, DiscountAmount: discount}
}

type ICouponService interface {
	ApplyCode(ctx context.Context, code string, subtotal decimal.Decimal) (Evaluation, error)
	RedeemCoupon(ctx context.Context, code string) error
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
}

type CouponService struct {
	couponRepo db.ICouponRepository
}

func NewCouponService(couponRepo db.ICouponRepository) ICouponService {
	return &CouponService{couponRepo: couponRepo}
}

// ApplyCode 查折扣碼並評估是否適用於目前小計
// 折扣碼不存在不是error  回傳NOT_FOUND的evaluation
func (s *CouponService) ApplyCode(ctx context.Context, code string, subtotal decimal.Decimal) (Evaluation, error) {
	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if db.IsNotFound(err) {
			return rejected(ReasonNotFound), nil
		}
		if db.IsUndefinedTable(err) {
			return Evaluation{}, apperr.New(apperr.FeatureNotProvisionedCode, "coupons are not set up yet")
		}
		return Evaluation{}, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	return EvaluateCoupon(coupon, subtotal, time.Now().UTC()), nil
}

// RedeemCoupon 成功下單後使用次數+1  每張訂單只加一次
func (s *CouponService) RedeemCoupon(ctx context.Context, code string) error {
	if err := s.couponRepo.IncrementCouponUsage(ctx, code); err != nil {
		return apperr.Newf(apperr.CouponRedeemFailedCode, "failed to redeem coupon %s: %v", code, err)
	}
	return nil
}

func (s *CouponService) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	coupon.CouponID = uuid.New()
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	coupon.CurrentUses = 0

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return coupon, nil
}

func (s *CouponService) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}

	existing, err := s.couponRepo.GetCouponByID(ctx, coupon.CouponID)
	if err != nil {
		if db.IsNotFound(err) {
			return apperr.New(apperr.NotFoundCode, "coupon not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}

	// 使用次數只由redeem遞增  不接受admin改寫
	coupon.CurrentUses = existing.CurrentUses
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))

	if err := s.couponRepo.UpdateCoupon(ctx, coupon); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if err := s.couponRepo.DeleteCoupon(ctx, id); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CouponService) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "coupons are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return coupons, nil
}

func validateCoupon(coupon *model.Coupon) error {
	if strings.TrimSpace(coupon.Code) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "coupon code is empty")
	}
	if !model.IsValidDiscountType(string(coupon.DiscountType)) {
		return apperr.Newf(apperr.InvalidArgumentCode, "invalid discount type: %s", coupon.DiscountType)
	}
	if !coupon.DiscountValue.IsPositive() {
		return apperr.New(apperr.InvalidArgumentCode, "discount value must be positive")
	}
	if coupon.MaxUses != nil && *coupon.MaxUses <= 0 {
		return apperr.New(apperr.InvalidArgumentCode, "max uses must be positive")
	}
	if coupon.EndDate != nil && coupon.EndDate.Before(coupon.StartDate) {
		return apperr.New(apperr.InvalidArgumentCode, "end date is before start date")
	}
	return nil
}
