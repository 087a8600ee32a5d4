package model

import (
	"github.com/shopspring/decimal"
)

// 商品主檔
// Code 由服務端配發，建立後不可變更
// 軟刪除保留資料列，刪除後的 Code 不會被重新使用
type Product struct {
	ProductID    uint            `gorm:"primaryKey" json:"-"`
	Code         string          `gorm:"not null;type:varchar(100);uniqueIndex" json:"product_code"`
	Name         string          `gorm:"not null;type:varchar(100)" json:"name"`
	Unit         string          `gorm:"not null;type:varchar(50)" json:"unit"`
	ImportPrice  decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"import_price"`
	SellingPrice decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"selling_price"`
	TaxRate      decimal.Decimal `gorm:"not null;type:decimal(5,2)" json:"tax_rate"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	BaseModel
}
