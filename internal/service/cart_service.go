package service

import (
	"context"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ICartService interface {
	OpenStore(ctx context.Context, sessionID string) *cart.Store
	AddProduct(ctx context.Context, store *cart.Store, productID uuid.UUID, selectedColor, customName string) error
}

// CartService 購物車進出口
// 每個request重新開一個store (load -> 操作 -> 每次mutation自動存快照)
type CartService struct {
	productRepo db.IProductRepository
	persister   cart.Persister
	logger      *zerolog.Logger
}

func NewCartService(productRepo db.IProductRepository, persister cart.Persister, logger *zerolog.Logger) ICartService {
	return &CartService{
		productRepo: productRepo,
		persister:   persister,
		logger:      logger,
	}
}

func (s *CartService) OpenStore(ctx context.Context, sessionID string) *cart.Store {
	return cart.NewStore(ctx, sessionID, s.persister, s.logger)
}

// AddProduct 驗證商品與顏色後把商品快照加進購物車
// 加入當下的價格與名稱會跟著line走  之後商品被改不影響已在車內的line
func (s *CartService) AddProduct(ctx context.Context, store *cart.Store, productID uuid.UUID, selectedColor, customName string) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if db.IsNotFound(err) {
			return apperr.New(apperr.NotFoundCode, "product not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}

	if !product.HasAvailableColor(selectedColor) {
		return apperr.Newf(apperr.InvalidArgumentCode, "color %s is not available for this product", selectedColor)
	}

	store.AddItem(ctx, model.CartLine{
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		SalePrice:     product.SalePrice,
		SelectedColor: selectedColor,
		CustomName:    customName,
		ImageURL:      product.ImageURL,
	})
	return nil
}
