package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/constants"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary track order (public)
// @Tags order
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} api.Response{data=dto.TrackOrderDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /orders/{id}/track [get]
func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.TrackOrderDTO{
		OrderID:       order.OrderID.String(),
		OrderStatus:   string(order.OrderStatus),
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.Total,
		OrderDate:     order.OrderDate,
	}, nil)
}

// @Summary list orders
// @Tags admin-order
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Failure 470 {object} api.ResponseError{data=string} "FeatureNotProvisionedCode"
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page := constants.DefaultPaging
	pageSize := constants.DefaultPagingSize
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	orders, total, err := h.orderService.ListOrders(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, convertOrderToDTO(&order))
	}

	api.SuccessJSON(w, result, dto.PagingMeta{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// @Summary get order detail
// @Tags admin-order
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderToDTO(order), nil)
}

// @Summary update order status
// @Tags admin-order
// @Accept json
// @Param id path string true "order id"
// @Param status body dto.UpdateOrderStatusDTO true "next status"
// @Success 200 {object} api.Response "success"
// @Failure 462 {object} api.ResponseError{data=string} "InvalidStateCode"
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), id, model.OrderStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary update payment status
// @Tags admin-order
// @Accept json
// @Param id path string true "order id"
// @Param status body dto.UpdatePaymentStatusDTO true "next status"
// @Success 200 {object} api.Response "success"
// @Failure 462 {object} api.ResponseError{data=string} "InvalidStateCode"
// @Router /admin/orders/{id}/payment [patch]
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.UpdatePaymentStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.orderService.UpdatePaymentStatus(r.Context(), id, model.PaymentStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertOrderToDTO(order *model.Order) dto.OrderDTO {
	result := dto.OrderDTO{
		OrderID:       order.OrderID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		OrderStatus:   string(order.OrderStatus),
		OrderDate:     order.OrderDate,
		Items:         make([]dto.OrderItemDTO, 0, len(order.OrderItems)),
	}
	if order.CouponCode != nil {
		result.CouponCode = *order.CouponCode
	}
	if order.Notes != nil {
		result.Notes = *order.Notes
	}
	for _, item := range order.OrderItems {
		itemDTO := dto.OrderItemDTO{
			ProductID:     item.ProductID.String(),
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice,
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
		}
		if item.CustomName != nil {
			itemDTO.CustomName = *item.CustomName
		}
		result.Items = append(result.Items, itemDTO)
	}
	return result
}
