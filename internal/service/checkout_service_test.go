package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/notification"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memPersister struct {
	snapshots map[string][]model.CartLine
}

func newMemPersister() *memPersister {
	return &memPersister{snapshots: make(map[string][]model.CartLine)}
}

func (p *memPersister) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	return p.snapshots[sessionID], nil
}

func (p *memPersister) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	p.snapshots[sessionID] = lines
	return nil
}

func (p *memPersister) Drop(ctx context.Context, sessionID string) error {
	delete(p.snapshots, sessionID)
	return nil
}

type fakeOrderRepo struct {
	created   *model.Order
	createErr error
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = order
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if r.created != nil && r.created.OrderID == id {
		return r.created, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	if r.created == nil {
		return nil, 0, nil
	}
	return []model.Order{*r.created}, 1, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	r.created.OrderStatus = status
	return nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error {
	r.created.PaymentStatus = status
	return nil
}

var _ db.IOrderRepository = (*fakeOrderRepo)(nil)

type fakeCouponRepo struct {
	coupons      map[string]*model.Coupon
	incrementErr error
	increments   int
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*model.Coupon)}
}

func (r *fakeCouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *fakeCouponRepo) GetCouponByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	for _, c := range r.coupons {
		if c.CouponID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if c, ok := r.coupons[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCouponRepo) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var result []model.Coupon
	for _, c := range r.coupons {
		result = append(result, *c)
	}
	return result, nil
}

func (r *fakeCouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *fakeCouponRepo) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeCouponRepo) IncrementCouponUsage(ctx context.Context, code string) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments++
	if c, ok := r.coupons[code]; ok {
		c.CurrentUses++
	}
	return nil
}

var _ db.ICouponRepository = (*fakeCouponRepo)(nil)

type fakeNotifier struct {
	name  string
	err   error
	calls int
}

func (n *fakeNotifier) Name() string { return n.name }

func (n *fakeNotifier) NotifyOrderPlaced(ctx context.Context, details *notification.OrderDetails) error {
	n.calls++
	return n.err
}

type checkoutFixture struct {
	orderRepo  *fakeOrderRepo
	couponRepo *fakeCouponRepo
	notifier   *fakeNotifier
	checkout   ICheckoutService
	store      *cart.Store
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	orderRepo := &fakeOrderRepo{}
	couponRepo := newFakeCouponRepo()
	notifier := &fakeNotifier{name: "test"}
	dispatcher := notification.NewDispatcher(nil, notifier)

	return &checkoutFixture{
		orderRepo:  orderRepo,
		couponRepo: couponRepo,
		notifier:   notifier,
		checkout:   NewCheckoutService(orderRepo, NewCouponService(couponRepo), dispatcher, nil),
		store:      cart.NewStore(context.Background(), uuid.New().String(), newMemPersister(), nil),
	}
}

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		CustomerName:  "Jordan",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "9876543210",
		PaymentMethod: model.PaymentMethodCash,
	}
}

func addMysteryBox(t *testing.T, store *cart.Store) {
	t.Helper()
	store.AddItem(context.Background(), model.CartLine{
		ProductID:     uuid.New(),
		ProductName:   "Mystery Box",
		UnitPrice:     decimal.NewFromInt(299),
		SelectedColor: "surprise",
	})
}

func TestSubmitSuccess(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)

	result, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, result.OrderID)
	require.True(t, result.Subtotal.Equal(decimal.NewFromInt(299)))
	require.True(t, result.Discount.IsZero())
	require.True(t, result.Total.Equal(decimal.NewFromInt(299)))
	require.Empty(t, result.Warnings)

	require.NotNil(t, f.orderRepo.created)
	require.Equal(t, model.OrderStatusPlaced, f.orderRepo.created.OrderStatus)
	require.Equal(t, model.PaymentStatusPending, f.orderRepo.created.PaymentStatus)
	require.Len(t, f.orderRepo.created.OrderItems, 1)
	require.Equal(t, 1, f.notifier.calls)

	// 成功下單後購物車要清空
	require.Empty(t, f.store.Lines())
}

func TestSubmitEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.Error(t, err)
	require.Equal(t, apperr.EmptyCartCode, apperr.CodeOf(err))
}

func TestSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *SubmitRequest)
	}{
		{"missing name", func(req *SubmitRequest) { req.CustomerName = "  " }},
		{"bad email", func(req *SubmitRequest) { req.CustomerEmail = "not-an-email" }},
		{"short phone", func(req *SubmitRequest) { req.CustomerPhone = "123" }},
		{"bad payment method", func(req *SubmitRequest) { req.PaymentMethod = "bitcoin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			addMysteryBox(t, f.store)

			req := validSubmitRequest()
			tt.mutate(&req)

			_, err := f.checkout.Submit(context.Background(), f.store, req)
			require.Error(t, err)
			require.Equal(t, apperr.InvalidArgumentCode, apperr.CodeOf(err))

			// 驗證失敗時購物車保持原樣
			require.Len(t, f.store.Lines(), 1)
		})
	}
}

func TestSubmitWithCoupon(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)

	f.couponRepo.coupons["SAVE10"] = &model.Coupon{
		CouponID:      uuid.New(),
		Code:          "SAVE10",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		Active:        true,
		StartDate:     time.Now().Add(-time.Hour),
	}

	req := validSubmitRequest()
	req.CouponCode = "save10"

	result, err := f.checkout.Submit(context.Background(), f.store, req)
	require.NoError(t, err)
	// 10% of 299 = 29.90
	require.True(t, result.Discount.Equal(decimal.NewFromFloat(29.90)), "got %s", result.Discount)
	require.True(t, result.Total.Equal(decimal.NewFromFloat(269.10)), "got %s", result.Total)
	require.Equal(t, 1, f.couponRepo.increments)
	require.NotNil(t, f.orderRepo.created.CouponCode)
	require.Equal(t, "SAVE10", *f.orderRepo.created.CouponCode)
}

func TestSubmitCouponNotApplicable(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)

	req := validSubmitRequest()
	req.CouponCode = "NOPE"

	_, err := f.checkout.Submit(context.Background(), f.store, req)
	require.Error(t, err)
	require.Equal(t, apperr.InvalidArgumentCode, apperr.CodeOf(err))
	require.Nil(t, f.orderRepo.created)
}

func TestSubmitOrderPersistFailed(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)
	f.orderRepo.createErr = db.ErrOrderInsert

	_, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.Error(t, err)
	require.Equal(t, apperr.OrderPersistFailedCode, apperr.CodeOf(err))

	// 下單失敗購物車不能被清掉
	require.Len(t, f.store.Lines(), 1)
	require.Equal(t, 0, f.notifier.calls)
}

func TestSubmitOrderItemsFailed(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)
	f.orderRepo.createErr = db.ErrOrderItemsInsert

	_, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.Error(t, err)
	require.Equal(t, apperr.OrderItemsFailedCode, apperr.CodeOf(err))
}

// redeem失敗不影響訂單成立  只出現在warnings
func TestSubmitCouponRedeemFailureIsSoft(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)

	f.couponRepo.coupons["SAVE10"] = &model.Coupon{
		CouponID:      uuid.New(),
		Code:          "SAVE10",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		Active:        true,
		StartDate:     time.Now().Add(-time.Hour),
	}
	f.couponRepo.incrementErr = errors.New("connection reset")

	req := validSubmitRequest()
	req.CouponCode = "SAVE10"

	result, err := f.checkout.Submit(context.Background(), f.store, req)
	require.NoError(t, err)
	require.Contains(t, result.Warnings, "COUPON_REDEEM_FAILED")
	require.NotNil(t, f.orderRepo.created)
	require.Empty(t, f.store.Lines())
}

func TestSubmitNotificationFailureIsSoft(t *testing.T) {
	f := newCheckoutFixture(t)
	addMysteryBox(t, f.store)
	f.notifier.err = errors.New("smtp timeout")

	result, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.NoError(t, err)
	require.Contains(t, result.Warnings, "NOTIFICATION_FAILED")
	require.NotNil(t, f.orderRepo.created)
}

func TestSubmitSnapshotsEffectivePrice(t *testing.T) {
	f := newCheckoutFixture(t)

	sale := decimal.NewFromInt(149)
	f.store.AddItem(context.Background(), model.CartLine{
		ProductID:     uuid.New(),
		ProductName:   "Flexi Rex",
		UnitPrice:     decimal.NewFromInt(199),
		SalePrice:     &sale,
		SelectedColor: "green",
	})

	result, err := f.checkout.Submit(context.Background(), f.store, validSubmitRequest())
	require.NoError(t, err)
	require.True(t, result.Subtotal.Equal(decimal.NewFromInt(149)))
	require.True(t, f.orderRepo.created.OrderItems[0].UnitPrice.Equal(decimal.NewFromInt(149)))
}
