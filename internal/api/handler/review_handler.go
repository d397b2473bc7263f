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

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// @Summary submit review
// @Tags review
// @Accept json
// @Produce json
// @Param review body dto.SubmitReviewDTO true "review"
// @Success 200 {object} api.Response{data=dto.ReviewDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Router /reviews [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	created, err := h.reviewService.SubmitReview(r.Context(), &model.Review{
		ProductID:  productID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertReviewToDTO(created), nil)
}

// @Summary list approved reviews for product
// @Tags review
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=[]dto.ReviewDTO} "success"
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	reviews, err := h.reviewService.ListProductReviews(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, convertReviewToDTO(&review))
	}
	api.SuccessJSON(w, result, nil)
}

// @Summary list all reviews including pending
// @Tags admin-review
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.ReviewDTO} "success"
// @Router /admin/reviews [get]
func (h *ReviewHandler) ListAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListAllReviews(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, convertReviewToDTO(&review))
	}
	api.SuccessJSON(w, result, nil)
}

// @Summary approve review
// @Tags admin-review
// @Param id path string true "review id"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/reviews/{id}/approve [patch]
func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.reviewService.ApproveReview(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary delete review
// @Tags admin-review
// @Param id path string true "review id"
// @Success 200 {object} api.Response "success"
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertReviewToDTO(review *model.Review) dto.ReviewDTO {
	return dto.ReviewDTO{
		ReviewID:   review.ReviewID.String(),
		ProductID:  review.ProductID.String(),
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Approved:   review.Approved,
		CreatedAt:  review.CreatedAt,
	}
}
