package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
cache aside 裝飾器
讀取單一商品走快取，列表與搜尋一律走DB
快取失敗只記log不擋主流程
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache redis_repo.IProductCacheRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, cache redis_repo.IProductCacheRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, cache: cache}
}

func (p *CacheAsideProductRepo) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	cached, err := p.cache.GetProduct(ctx, code)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Warn().Err(err).Str("code", code).Msg("product cache read failed")
	}

	product, err := p.IProductRepository.GetProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := p.cache.SetProduct(ctx, product); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("product cache write failed")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}
	p.invalidate(ctx, product.Code)
	return nil
}

func (p *CacheAsideProductRepo) UpdateProductStatus(ctx context.Context, code string, isActive bool) (int64, error) {
	affected, err := p.IProductRepository.UpdateProductStatus(ctx, code, isActive)
	if err != nil {
		return affected, err
	}
	p.invalidate(ctx, code)
	return affected, nil
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, code string) (int64, error) {
	affected, err := p.IProductRepository.DeleteProduct(ctx, code)
	if err != nil {
		return affected, err
	}
	p.invalidate(ctx, code)
	return affected, nil
}

func (p *CacheAsideProductRepo) invalidate(ctx context.Context, code string) {
	if err := p.cache.DeleteProduct(ctx, code); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("product cache invalidate failed")
	}
}
