package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

var (
	// ErrCacheMiss 快取沒有該商品
	ErrCacheMiss = errors.New("product cache miss")
)

// IProductCacheRepository 定義 Redis 商品快取操作的介面
type IProductCacheRepository interface {
	// GetProduct 取得快取商品，沒有時回傳 ErrCacheMiss
	GetProduct(ctx context.Context, code string) (*model.Product, error)

	// SetProduct 寫入快取商品
	SetProduct(ctx context.Context, product *model.Product) error

	// DeleteProduct 刪除快取商品
	DeleteProduct(ctx context.Context, code string) error
}

// 快取專用的序列化結構
// API回應會隱藏ProductID(json:"-")，快取不能跟著隱藏，
// 不然回填後的紀錄主鍵歸零，後續update會變成insert
type cachedProduct struct {
	ProductID    uint            `json:"product_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	ImportPrice  decimal.Decimal `json:"import_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EncodeProduct 商品快取編碼，保留主鍵
func EncodeProduct(product *model.Product) ([]byte, error) {
	return json.Marshal(cachedProduct{
		ProductID:    product.ProductID,
		Code:         product.Code,
		Name:         product.Name,
		Unit:         product.Unit,
		ImportPrice:  product.ImportPrice,
		SellingPrice: product.SellingPrice,
		TaxRate:      product.TaxRate,
		IsActive:     product.IsActive,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	})
}

// DecodeProduct 商品快取解碼
func DecodeProduct(data []byte) (*model.Product, error) {
	var cached cachedProduct
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	product := &model.Product{
		ProductID:    cached.ProductID,
		Code:         cached.Code,
		Name:         cached.Name,
		Unit:         cached.Unit,
		ImportPrice:  cached.ImportPrice,
		SellingPrice: cached.SellingPrice,
		TaxRate:      cached.TaxRate,
		IsActive:     cached.IsActive,
	}
	product.CreatedAt = cached.CreatedAt
	product.UpdatedAt = cached.UpdatedAt
	return product, nil
}

/*
redis 只做商品讀取快取，DB才是真相來源
結構:

	backoffice:product:{code} -> 商品JSON
*/
type ProductCacheRepo struct {
	productCache *redis.Client
	ttl          time.Duration
}

func NewProductCacheRepo(productCache *redis.Client, ttl time.Duration) *ProductCacheRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProductCacheRepo{productCache: productCache, ttl: ttl}
}

func productKey(code string) string {
	return fmt.Sprintf("backoffice:product:%s", code)
}

func (r *ProductCacheRepo) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	data, err := r.productCache.Get(ctx, productKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	product, err := DecodeProduct(data)
	if err != nil {
		// 壞掉的快取直接清掉，當作miss
		r.productCache.Del(ctx, productKey(code))
		return nil, ErrCacheMiss
	}
	return product, nil
}

func (r *ProductCacheRepo) SetProduct(ctx context.Context, product *model.Product) error {
	data, err := EncodeProduct(product)
	if err != nil {
		return err
	}
	return r.productCache.Set(ctx, productKey(product.Code), data, r.ttl).Err()
}

func (r *ProductCacheRepo) DeleteProduct(ctx context.Context, code string) error {
	return r.productCache.Del(ctx, productKey(code)).Err()
}

var _ IProductCacheRepository = (*ProductCacheRepo)(nil)
