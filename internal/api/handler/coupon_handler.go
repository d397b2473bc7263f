package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponService service.ICouponService
}

func NewCouponHandler(couponService service.ICouponService) *CouponHandler {
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	return &CouponHandler{
		couponService: couponService,
	}
}

// @Summary list coupons
// @Tags admin-coupon
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.CouponDTO} "success"
// @Failure 470 {object} api.ResponseError{data=string} "FeatureNotProvisionedCode"
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponService.ListCoupons(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.CouponDTO, 0, len(coupons))
	for _, coupon := range coupons {
		result = append(result, convertCouponToDTO(&coupon))
	}
	api.SuccessJSON(w, result, nil)
}

// @Summary create coupon
// @Tags admin-coupon
// @Accept json
// @Produce json
// @Param coupon body dto.UpsertCouponDTO true "coupon"
// @Success 200 {object} api.Response{data=dto.CouponDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Router /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	created, err := h.couponService.CreateCoupon(r.Context(), convertUpsertDTOToCoupon(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCouponToDTO(created), nil)
}

// @Summary update coupon
// @Tags admin-coupon
// @Accept json
// @Param id path string true "coupon id"
// @Param coupon body dto.UpsertCouponDTO true "coupon"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.UpsertCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	coupon := convertUpsertDTOToCoupon(&req)
	coupon.CouponID = id

	if err := h.couponService.UpdateCoupon(r.Context(), coupon); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary delete coupon
// @Tags admin-coupon
// @Param id path string true "coupon id"
// @Success 200 {object} api.Response "success"
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.couponService.DeleteCoupon(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertCouponToDTO(coupon *model.Coupon) dto.CouponDTO {
	return dto.CouponDTO{
		CouponID:       coupon.CouponID.String(),
		Code:           coupon.Code,
		DiscountType:   string(coupon.DiscountType),
		DiscountValue:  coupon.DiscountValue,
		MinOrderAmount: coupon.MinOrderAmount,
		MaxUses:        coupon.MaxUses,
		CurrentUses:    coupon.CurrentUses,
		Active:         coupon.Active,
		StartDate:      coupon.StartDate,
		EndDate:        coupon.EndDate,
	}
}

func convertUpsertDTOToCoupon(req *dto.UpsertCouponDTO) *model.Coupon {
	return &model.Coupon{
		Code:           req.Code,
		DiscountType:   model.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		Active:         req.Active,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
}
