package service

import (
	"context"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
)

type IBannerService interface {
	ListActiveBanners(ctx context.Context) ([]model.Banner, error)
	ListAllBanners(ctx context.Context) ([]model.Banner, error)
	CreateBanner(ctx context.Context, banner *model.Banner) (*model.Banner, error)
	UpdateBanner(ctx context.Context, banner *model.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}

type BannerService struct {
	bannerRepo db.IBannerRepository
}

func NewBannerService(bannerRepo db.IBannerRepository) IBannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

func (s *BannerService) ListActiveBanners(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.ListBanners(ctx, true)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "banners are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return banners, nil
}

func (s *BannerService) ListAllBanners(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.ListBanners(ctx, false)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "banners are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return banners, nil
}

func (s *BannerService) CreateBanner(ctx context.Context, banner *model.Banner) (*model.Banner, error) {
	if strings.TrimSpace(banner.Title) == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "banner title is required")
	}

	banner.BannerID = uuid.New()
	if err := s.bannerRepo.CreateBanner(ctx, banner); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return banner, nil
}

func (s *BannerService) UpdateBanner(ctx context.Context, banner *model.Banner) error {
	if strings.TrimSpace(banner.Title) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "banner title is required")
	}

	if err := s.bannerRepo.UpdateBanner(ctx, banner); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *BannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if err := s.bannerRepo.DeleteBanner(ctx, id); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
