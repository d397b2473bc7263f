package db

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
)

type IBannerRepository interface {
	CreateBanner(ctx context.Context, banner *model.Banner) error
	ListBanners(ctx context.Context, activeOnly bool) ([]model.Banner, error)
	UpdateBanner(ctx context.Context, banner *model.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}

type BannerRepo struct {
	db *DbDao
}

func NewBannerRepo(db *DbDao) *BannerRepo {
	return &BannerRepo{db: db}
}

var _ IBannerRepository = (*BannerRepo)(nil)

func (s *BannerRepo) CreateBanner(ctx context.Context, banner *model.Banner) error {
	return s.db.WithContext(ctx).Create(banner).Error
}

func (s *BannerRepo) ListBanners(ctx context.Context, activeOnly bool) ([]model.Banner, error) {
	var banners []model.Banner
	query := s.db.WithContext(ctx).Model(&model.Banner{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("sort_order ASC, created_at DESC").Find(&banners).Error
	return banners, err
}

func (s *BannerRepo) UpdateBanner(ctx context.Context, banner *model.Banner) error {
	return s.db.WithContext(ctx).Save(banner).Error
}

func (s *BannerRepo) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("banner_id = ?", id).Delete(&model.Banner{}).Error
}
