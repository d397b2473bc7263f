package redis_decorator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const productCacheTTL = 5 * time.Minute

/*
cache-aside 商品快取
讀取先走redis  miss才回db並回填
admin寫入商品後直接清掉該筆快取  下次讀取重新回填
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache cache.Cache
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, c cache.Cache) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, cache: c}
}

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	key := productCacheKey(id)

	if raw, err := p.cache.Get(ctx, key); err == nil {
		if s, ok := raw.(string); ok {
			var product model.Product
			if err := json.Unmarshal([]byte(s), &product); err == nil {
				return &product, nil
			}
			// 快取內容壞掉就清掉走db
			p.cache.Delete(ctx, key)
		}
	}

	product, err := p.IProductRepository.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(product); err == nil {
		if err := p.cache.Set(ctx, key, string(raw), productCacheTTL); err != nil {
			log.Warn().Err(err).Str("product_id", id.String()).Msg("failed to cache product")
		}
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}
	if err := p.cache.Delete(ctx, productCacheKey(product.ProductID)); err != nil {
		log.Warn().Err(err).Str("product_id", product.ProductID.String()).Msg("failed to invalidate product cache")
	}
	return nil
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := p.IProductRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if err := p.cache.Delete(ctx, productCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("failed to invalidate product cache")
	}
	return nil
}

func (p *CacheAsideProductRepo) SetColorAvailability(ctx context.Context, id uuid.UUID, color string, available bool) error {
	if err := p.IProductRepository.SetColorAvailability(ctx, id, color, available); err != nil {
		return err
	}
	if err := p.cache.Delete(ctx, productCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("failed to invalidate product cache")
	}
	return nil
}
