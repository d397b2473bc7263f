package db

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]model.Review, error)
	ListAllReviews(ctx context.Context) ([]model.Review, error)
	SetReviewApproved(ctx context.Context, id uuid.UUID, approved bool) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type ReviewRepo struct {
	db *DbDao
}

func NewReviewRepo(db *DbDao) *ReviewRepo {
	return &ReviewRepo{db: db}
}

var _ IReviewRepository = (*ReviewRepo)(nil)

func (s *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *ReviewRepo) ListReviewsByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]model.Review, error) {
	var reviews []model.Review
	query := s.db.WithContext(ctx).Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	err := query.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepo) ListAllReviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepo) SetReviewApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	res := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("review_id = ?", id).
		Update("approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ReviewRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("review_id = ?", id).Delete(&model.Review{}).Error
}
