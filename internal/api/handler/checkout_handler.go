package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/middleware"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
	cartService     service.ICartService
	couponService   service.ICouponService
	// upi收款帳號  設定檔提供  回給前端組付款QR用
	upiID string
}

func NewCheckoutHandler(
	checkoutService service.ICheckoutService,
	cartService service.ICartService,
	couponService service.ICouponService,
	upiID string,
) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
		couponService:   couponService,
		upiID:           upiID,
	}
}

// @Summary submit order
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Param checkout body dto.CheckoutRequestDTO true "customer info"
// @Success 200 {object} api.Response{data=dto.CheckoutResponseDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 461 {object} api.ResponseError{data=string} "EmptyCartCode"
// @Failure 520 {object} api.ResponseError{data=string} "OrderPersistFailedCode"
// @Failure 521 {object} api.ResponseError{data=string} "OrderItemsFailedCode"
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	ctx := r.Context()
	sessionID := middleware.GetSessionIDFromContext(ctx)
	store := h.cartService.OpenStore(ctx, sessionID)

	result, err := h.checkoutService.Submit(ctx, store, service.SubmitRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		CouponCode:    req.CouponCode,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := dto.CheckoutResponseDTO{
		OrderID:  result.OrderID.String(),
		Subtotal: result.Subtotal,
		Discount: result.Discount,
		Total:    result.Total,
		Warnings: result.Warnings,
	}
	if model.PaymentMethod(req.PaymentMethod) == model.PaymentMethodUpi {
		resp.UpiID = h.upiID
	}

	api.SuccessJSON(w, resp, nil)
}

// @Summary evaluate coupon against current cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Param coupon body dto.ApplyCouponDTO true "coupon code"
// @Success 200 {object} api.Response{data=dto.CouponEvaluationDTO} "success"
// @Failure 470 {object} api.ResponseError{data=string} "FeatureNotProvisionedCode"
// @Router /checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	ctx := r.Context()
	sessionID := middleware.GetSessionIDFromContext(ctx)
	store := h.cartService.OpenStore(ctx, sessionID)

	eval, err := h.couponService.ApplyCode(ctx, req.Code, model.CartSubtotal(store.Lines()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.CouponEvaluationDTO{
		Applicable:     eval.Applicable,
		DiscountAmount: eval.DiscountAmount,
		Reason:         string(eval.Reason),
	}, nil)
}
