package db

import (
	"context"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ICouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) error
	GetCouponByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	IncrementCouponUsage(ctx context.Context, code string) error
}

type CouponRepo struct {
	db *DbDao
}

func NewCouponRepo(db *DbDao) *CouponRepo {
	return &CouponRepo{db: db}
}

var _ ICouponRepository = (*CouponRepo)(nil)

func (s *CouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return s.db.WithContext(ctx).Create(coupon).Error
}

func (s *CouponRepo) GetCouponByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).First(&coupon, "coupon_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// GetCouponByCode 查詢不分大小寫  儲存時已轉大寫
func (s *CouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).First(&coupon, "code = ?", strings.ToUpper(code)).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponRepo) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (s *CouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return s.db.WithContext(ctx).Save(coupon).Error
}

func (s *CouponRepo) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("coupon_id = ?", id).Delete(&model.Coupon{}).Error
}

// IncrementCouponUsage 使用次數+1
// 單一UPDATE自增  但沒有搭配max_uses的條件檢查
// 高併發下接近用罄的折扣碼可能超過max_uses (已知限制)
func (s *CouponRepo) IncrementCouponUsage(ctx context.Context, code string) error {
	res := s.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("code = ?", strings.ToUpper(code)).
		Update("current_uses", gorm.Expr("current_uses + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
