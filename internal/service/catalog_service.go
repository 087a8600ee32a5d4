package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	taxRateMax = decimal.NewFromInt(100)
)

// PagedProducts 分頁結果，Total 為符合條件的總筆數
type PagedProducts struct {
	Items    []model.Product `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// BulkDeleteResult 批次刪除結果
// 刪除不存在的編號直接略過，不算失敗
type BulkDeleteResult struct {
	DeletedCodes []string         `json:"deleted_codes"`
	SkippedCodes []string         `json:"skipped_codes"`
	FailedCodes  map[string]error `json:"-"`
}

type ICatalogService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, code string) (*model.Product, error)
	GetActiveProduct(ctx context.Context, code string) (*model.Product, error)
	UpdateProduct(ctx context.Context, code string, product *model.Product) (*model.Product, error)
	UpdateProductStatus(ctx context.Context, code string, isActive bool) error
	DeleteProduct(ctx context.Context, code string) error
	DeleteProducts(ctx context.Context, codes []string) (*BulkDeleteResult, error)
	ListProducts(ctx context.Context, page, pageSize int, filter db.ListProductsFilter) (*PagedProducts, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
}

type CatalogService struct {
	productRepo db.IProductRepository
}

func NewCatalogService(productRepo db.IProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// 驗證商品不變量
// 賣價必須大於進價，稅率0~100，名稱與單位必填
func validateProduct(product *model.Product) []apperr.FieldError {
	var fields []apperr.FieldError

	if product.Name == "" {
		fields = append(fields, apperr.FieldError{Field: "name", Reason: "must not be empty"})
	}
	if product.Unit == "" {
		fields = append(fields, apperr.FieldError{Field: "unit", Reason: "must not be empty"})
	}
	if product.ImportPrice.IsNegative() {
		fields = append(fields, apperr.FieldError{Field: "import_price", Reason: "must not be negative"})
	}
	if product.SellingPrice.IsNegative() {
		fields = append(fields, apperr.FieldError{Field: "selling_price", Reason: "must not be negative"})
	}
	if product.SellingPrice.LessThanOrEqual(product.ImportPrice) {
		fields = append(fields, apperr.FieldError{Field: "selling_price", Reason: "must be greater than import price"})
	}
	if product.TaxRate.IsNegative() || product.TaxRate.GreaterThan(taxRateMax) {
		fields = append(fields, apperr.FieldError{Field: "tax_rate", Reason: "must be between 0 and 100"})
	}

	return fields
}

// 建立商品
// 編號由服務端配發，呼叫端給的編號一律忽略
func (s *CatalogService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if fields := validateProduct(product); len(fields) > 0 {
		return nil, apperr.Validation("invalid product", fields...)
	}

	product.ProductID = 0
	product.Code = newProductCode()

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("product code %s already exists", product.Code)
		}
		return nil, apperr.Store(err)
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.GetProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product %s not found", code)
		}
		return nil, apperr.Store(err)
	}
	return product, nil
}

// 只回傳上架中的商品，給訂單驗證走的讀取路徑
func (s *CatalogService) GetActiveProduct(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.GetActiveProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product %s not found", code)
		}
		return nil, apperr.Store(err)
	}
	return product, nil
}

// 更新商品
// 編號不可變更，合併後的紀錄要重新通過全部不變量才落地
func (s *CatalogService) UpdateProduct(ctx context.Context, code string, product *model.Product) (*model.Product, error) {
	existing, err := s.GetProduct(ctx, code)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.Name = product.Name
	merged.Unit = product.Unit
	merged.ImportPrice = product.ImportPrice
	merged.SellingPrice = product.SellingPrice
	merged.TaxRate = product.TaxRate
	merged.IsActive = product.IsActive

	if fields := validateProduct(&merged); len(fields) > 0 {
		return nil, apperr.Validation("invalid product", fields...)
	}

	if err := s.productRepo.UpdateProduct(ctx, &merged); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("product code %s already exists", merged.Code)
		}
		return nil, apperr.Store(err)
	}
	return &merged, nil
}

// 只切換上下架狀態，價格稅率沒動就不重新驗證
func (s *CatalogService) UpdateProductStatus(ctx context.Context, code string, isActive bool) error {
	affected, err := s.productRepo.UpdateProductStatus(ctx, code, isActive)
	if err != nil {
		return apperr.Store(err)
	}
	if affected == 0 {
		return apperr.NotFound("product %s not found", code)
	}
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, code string) error {
	affected, err := s.productRepo.DeleteProduct(ctx, code)
	if err != nil {
		return apperr.Store(err)
	}
	if affected == 0 {
		return apperr.NotFound("product %s not found", code)
	}
	return nil
}

// 批次刪除採 best effort
// 每個編號獨立刪除，不存在的略過，部分失敗不影響已刪除的編號
func (s *CatalogService) DeleteProducts(ctx context.Context, codes []string) (*BulkDeleteResult, error) {
	result := &BulkDeleteResult{
		DeletedCodes: make([]string, 0, len(codes)),
		SkippedCodes: make([]string, 0),
		FailedCodes:  make(map[string]error),
	}

	for _, code := range codes {
		affected, err := s.productRepo.DeleteProduct(ctx, code)
		if err != nil {
			result.FailedCodes[code] = err
			continue
		}
		if affected == 0 {
			result.SkippedCodes = append(result.SkippedCodes, code)
			continue
		}
		result.DeletedCodes = append(result.DeletedCodes, code)
	}

	return result, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, pageSize int, filter db.ListProductsFilter) (*PagedProducts, error) {
	var fields []apperr.FieldError
	if page < 1 {
		fields = append(fields, apperr.FieldError{Field: "page", Reason: "must be a positive integer"})
	}
	if pageSize < 1 {
		fields = append(fields, apperr.FieldError{Field: "pageSize", Reason: "must be a positive integer"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid paging", fields...)
	}

	products, total, err := s.productRepo.GetProductsPaginated(ctx, page, pageSize, filter)
	if err != nil {
		return nil, apperr.Store(err)
	}

	return &PagedProducts{
		Items:    products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// 空字串視為全部符合，name 升冪排序
func (s *CatalogService) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	products, err := s.productRepo.SearchProducts(ctx, term)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return products, nil
}

func newProductCode() string {
	return fmt.Sprintf("P-%s", uuid.New().String())
}

var _ ICatalogService = (*CatalogService)(nil)
