package service

import (
	"context"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
)

type IProductService interface {
	ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SetColorAvailability(ctx context.Context, id uuid.UUID, color string, available bool) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) IProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		if db.IsUndefinedTable(err) {
			return nil, apperr.New(apperr.FeatureNotProvisionedCode, "products are not set up yet")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	product.ProductID = uuid.New()
	for i := range product.Colors {
		product.Colors[i].ProductID = product.ProductID
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	if _, err := s.productRepo.GetProductByID(ctx, product.ProductID); err != nil {
		if db.IsNotFound(err) {
			return apperr.New(apperr.NotFoundCode, "product not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}

	for i := range product.Colors {
		product.Colors[i].ProductID = product.ProductID
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ProductService) SetColorAvailability(ctx context.Context, id uuid.UUID, color string, available bool) error {
	if err := s.productRepo.SetColorAvailability(ctx, id, color, available); err != nil {
		if db.IsNotFound(err) {
			return apperr.New(apperr.NotFoundCode, "product color not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "product name is required")
	}
	if !product.Price.IsPositive() {
		return apperr.New(apperr.InvalidArgumentCode, "product price must be positive")
	}
	if product.SalePrice != nil && !product.SalePrice.IsPositive() {
		return apperr.New(apperr.InvalidArgumentCode, "sale price must be positive")
	}
	return nil
}
