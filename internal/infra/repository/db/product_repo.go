package db

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
)

// ListProductsFilter 商品列表查詢條件
// IncludeInactive 預設false，列表只回傳上架中的商品
type ListProductsFilter struct {
	IncludeInactive bool
	Name            string
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 依商品編號查詢，不分上下架狀態
// 歷史訂單要能查到已下架商品
func (s *ProductRepo) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 依商品編號查詢上架中的商品
func (s *ProductRepo) GetActiveProductByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// 分頁查詢商品
// 超出範圍的頁數回傳空頁，total 仍為實際總數
func (s *ProductRepo) GetProductsPaginated(ctx context.Context, page, pageSize int, filter ListProductsFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	offset := (page - 1) * pageSize
	query := s.db.WithContext(ctx).Model(&model.Product{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	// 計算總數
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分頁查詢
	err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&products).Error

	return products, total, err
}

// 模糊查詢商品
// 比對 name 與 code，不分大小寫，只含上架中的商品，name 升冪排序
// 空字串視為全部符合
func (s *ProductRepo) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	var products []model.Product
	query := s.db.WithContext(ctx).Where("is_active = ?", true)

	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}

	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Update - 只切換上下架狀態，回傳影響筆數
func (s *ProductRepo) UpdateProductStatus(ctx context.Context, code string, isActive bool) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("code = ?", code).
		Update("is_active", isActive)
	return result.RowsAffected, result.Error
}

// Delete - 軟刪除商品，回傳影響筆數
// 資料列保留，unique index 擋住編號重用
func (s *ProductRepo) DeleteProduct(ctx context.Context, code string) (int64, error) {
	result := s.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Product{})
	return result.RowsAffected, result.Error
}
