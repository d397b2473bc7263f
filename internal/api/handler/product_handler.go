package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary list products
// @Tags product
// @Produce json
// @Param category query string false "filter by category"
// @Param featured query bool false "only featured products"
// @Param mystery_box query bool false "only mystery box products"
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Failure 470 {object} api.ResponseError{data=string} "FeatureNotProvisionedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := db.ProductFilter{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if featured := r.URL.Query().Get("featured"); featured != "" {
		v, err := strconv.ParseBool(featured)
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		filter.Featured = &v
	}
	if mysteryBox := r.URL.Query().Get("mystery_box"); mysteryBox != "" {
		v, err := strconv.ParseBool(mysteryBox)
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		filter.MysteryBox = &v
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, convertProductToDTO(&product))
	}
	api.SuccessJSON(w, result, nil)
}

// @Summary get product by id
// @Tags product
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductToDTO(product), nil)
}

// @Summary create product
// @Tags admin-product
// @Accept json
// @Produce json
// @Param product body dto.UpsertProductDTO true "product"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	product := convertUpsertDTOToProduct(&req)
	created, err := h.productService.CreateProduct(r.Context(), product)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductToDTO(created), nil)
}

// @Summary update product
// @Tags admin-product
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body dto.UpsertProductDTO true "product"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.UpsertProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	product := convertUpsertDTOToProduct(&req)
	product.ProductID = id

	if err := h.productService.UpdateProduct(r.Context(), product); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary delete product
// @Tags admin-product
// @Param id path string true "product id"
// @Success 200 {object} api.Response "success"
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary set color availability
// @Tags admin-product
// @Accept json
// @Param id path string true "product id"
// @Param color body dto.SetColorAvailabilityDTO true "color availability"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/products/{id}/colors [patch]
func (h *ProductHandler) SetColorAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.SetColorAvailabilityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.productService.SetColorAvailability(r.Context(), id, req.Color, req.Available); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertProductToDTO(product *model.Product) dto.ProductDTO {
	colors := make([]dto.ProductColorDTO, 0, len(product.Colors))
	for _, c := range product.Colors {
		colors = append(colors, dto.ProductColorDTO{
			Color:     c.Color,
			Available: c.Available,
		})
	}
	return dto.ProductDTO{
		ProductID:    product.ProductID.String(),
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		SalePrice:    product.SalePrice,
		Category:     product.Category,
		ImageURL:     product.ImageURL,
		Featured:     product.Featured,
		IsMysteryBox: product.IsMysteryBox,
		Colors:       colors,
	}
}

func convertUpsertDTOToProduct(req *dto.UpsertProductDTO) *model.Product {
	colors := make([]model.ProductColor, 0, len(req.Colors))
	for _, c := range req.Colors {
		colors = append(colors, model.ProductColor{
			Color:     c.Color,
			Available: c.Available,
		})
	}
	return &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
		IsMysteryBox: req.IsMysteryBox,
		Colors:       colors,
	}
}
