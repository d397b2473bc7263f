package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/middleware"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// 每個request開一個店面購物車  session id由middleware保證存在
func (h *CartHandler) openStore(r *http.Request) *cart.Store {
	sessionID := middleware.GetSessionIDFromContext(r.Context())
	return h.cartService.OpenStore(r.Context(), sessionID)
}

// @Summary get cart
// @Tags cart
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.openStore(r)
	api.SuccessJSON(w, convertCartToDTO(store), nil)
}

// @Summary add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Param item body dto.AddCartItemDTO true "item"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	store := h.openStore(r)
	if err := h.cartService.AddProduct(r.Context(), store, productID, req.SelectedColor, req.CustomName); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCartToDTO(store), nil)
}

// @Summary update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Param item body dto.UpdateCartItemDTO true "item"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart/items [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	store := h.openStore(r)
	store.UpdateQuantity(r.Context(), productID, req.SelectedColor, req.CustomName, req.Quantity)

	api.SuccessJSON(w, convertCartToDTO(store), nil)
}

// @Summary remove cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "cart session id"
// @Param item body dto.RemoveCartItemDTO true "item"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	store := h.openStore(r)
	store.RemoveItem(r.Context(), productID, req.SelectedColor, req.CustomName)

	api.SuccessJSON(w, convertCartToDTO(store), nil)
}

// @Summary clear cart
// @Tags cart
// @Param X-Session-Id header string false "cart session id"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.openStore(r)
	store.Clear(r.Context())

	api.SuccessJSON(w, convertCartToDTO(store), nil)
}

func convertCartToDTO(store *cart.Store) dto.CartDTO {
	lines := store.Lines()
	result := dto.CartDTO{
		Lines:      make([]dto.CartLineDTO, 0, len(lines)),
		TotalItems: store.TotalItemCount(),
		TotalPrice: model.CartSubtotal(lines),
	}
	for _, line := range lines {
		result.Lines = append(result.Lines, dto.CartLineDTO{
			ProductID:     line.ProductID.String(),
			ProductName:   line.ProductName,
			UnitPrice:     line.UnitPrice,
			SalePrice:     line.SalePrice,
			SelectedColor: line.SelectedColor,
			CustomName:    line.CustomName,
			Quantity:      line.Quantity,
			ImageURL:      line.ImageURL,
			LineTotal:     line.LineTotal(),
		})
	}
	return result
}
