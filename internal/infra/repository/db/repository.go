package db

import (
	"context"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
)

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	GetActiveProductByCode(ctx context.Context, code string) (*model.Product, error)
	GetProductsPaginated(ctx context.Context, page, pageSize int, filter ListProductsFilter) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	UpdateProductStatus(ctx context.Context, code string, isActive bool) (int64, error)
	DeleteProduct(ctx context.Context, code string) (int64, error)
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrderChecked(ctx context.Context, order *model.Order) error
	UpdateOrderChecked(ctx context.Context, order *model.Order) error
	GetOrderByCode(ctx context.Context, code string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	DeleteOrder(ctx context.Context, code string) (int64, error)
}

var (
	_ IProductRepository = (*ProductRepo)(nil)
	_ IOrderRepository   = (*OrderRepo)(nil)
)
