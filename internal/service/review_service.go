package service

import (
	"context"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
)

type IReviewService interface {
	SubmitReview(ctx context.Context, review *model.Review) (*model.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
	ListAllReviews(ctx context.Context) ([]model.Review, error)
	ApproveReview(ctx context.Context, id uuid.UUID) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type ReviewService struct {
	reviewRepo  db.IReviewRepository
	productRepo db.IProductRepository
}

func NewReviewService(reviewRepo db.IReviewRepository, productRepo db.IProductRepository) IReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// SubmitReview 顧客送出評價  預設未審核不公開
func (s *ReviewService) SubmitReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if strings.TrimSpace(review.AuthorName) == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "author name is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, apperr.New(apperr.InvalidArgumentCode, "rating must be between 1 and 5")
	}

	if _, err := s.productRepo.GetProductByID(ctx, review.ProductID); err != nil {
		if db.IsNotFound(err) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	review.ReviewID = uuid.New()
	review.Approved = false

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "reviews are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return review, nil
}

// ListProductReviews 公開清單只回審核過的
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID, true)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "reviews are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return reviews, nil
}

func (s *ReviewService) ListAllReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListAllReviews(ctx)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "reviews are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return reviews, nil
}

func (s *ReviewService) ApproveReview(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepo.SetReviewApproved(ctx, id, true); err != nil {
		if db.IsNotFound(err) {
			return apperr.New(apperr.NotFoundCode, "review not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
