package db

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductFilter struct {
	Category   *string
	Featured   *bool
	MysteryBox *bool
}

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SetColorAvailability(ctx context.Context, id uuid.UUID, color string, available bool) error
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

var _ IProductRepository = (*ProductRepo)(nil)

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Preload("Colors").First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	query := s.db.WithContext(ctx).Model(&model.Product{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.MysteryBox != nil {
		query = query.Where("is_mystery_box = ?", *filter.MysteryBox)
	}
	err := query.Preload("Colors").Order("created_at DESC").Find(&products).Error
	return products, err
}

// UpdateProduct 整筆更新  顏色清單整批重建
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.ExecTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ProductID).Delete(&model.ProductColor{}).Error; err != nil {
			return err
		}
		if len(product.Colors) == 0 {
			return nil
		}
		return tx.Create(&product.Colors).Error
	})
}

func (s *ProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.Product{}).Error
}

func (s *ProductRepo) SetColorAvailability(ctx context.Context, id uuid.UUID, color string, available bool) error {
	res := s.db.WithContext(ctx).Model(&model.ProductColor{}).
		Where("product_id = ? AND color = ?", id, color).
		Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
