package dto

import (
	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

// ProductDTO 商品請求內容
// 必填檢查在這一層做完才進service，對應後台表單的required欄位
type ProductDTO struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	ImportPrice  decimal.Decimal `json:"import_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	IsActive     bool            `json:"is_active"`
}

func (d *ProductDTO) Validate() []apperr.FieldError {
	var fields []apperr.FieldError
	if d.Name == "" {
		fields = append(fields, apperr.FieldError{Field: "name", Reason: "required"})
	}
	if d.Unit == "" {
		fields = append(fields, apperr.FieldError{Field: "unit", Reason: "required"})
	}
	return fields
}

func (d *ProductDTO) ToModel() *model.Product {
	return &model.Product{
		Name:         d.Name,
		Unit:         d.Unit,
		ImportPrice:  d.ImportPrice,
		SellingPrice: d.SellingPrice,
		TaxRate:      d.TaxRate,
		IsActive:     d.IsActive,
	}
}

// UpdateProductStatusDTO 上下架切換
type UpdateProductStatusDTO struct {
	IsActive *bool `json:"is_active"`
}

func (d *UpdateProductStatusDTO) Validate() []apperr.FieldError {
	if d.IsActive == nil {
		return []apperr.FieldError{{Field: "is_active", Reason: "required"}}
	}
	return nil
}

// BulkDeleteProductsDTO 批次刪除的編號清單
type BulkDeleteProductsDTO struct {
	ProductCodes []string `json:"product_codes"`
}

func (d *BulkDeleteProductsDTO) Validate() []apperr.FieldError {
	if len(d.ProductCodes) == 0 {
		return []apperr.FieldError{{Field: "product_codes", Reason: "required"}}
	}
	return nil
}
