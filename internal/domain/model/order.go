package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 訂單主檔
// OrderItems 為訂單專屬，隨訂單級聯刪除
type Order struct {
	OrderID       uint        `gorm:"primaryKey" json:"-"`
	Code          string      `gorm:"not null;type:varchar(100);uniqueIndex" json:"order_code"`
	CustomerName  string      `gorm:"not null;type:varchar(100)" json:"customer_name"`
	CustomerPhone string      `gorm:"not null;type:varchar(50)" json:"customer_phone"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	OrderDate     time.Time   `gorm:"not null" json:"order_date"`
	BaseModel
}

// 訂單項目
// ProductCode 與 SellingPrice 是下單當下的快照，不回查商品主檔
// 同一商品允許出現多筆項目，不做合併，所以用獨立流水號當主鍵
type OrderItem struct {
	ItemID       uint            `gorm:"primaryKey" json:"-"`
	OrderID      uint            `gorm:"not null;index" json:"-"`
	ProductCode  string          `gorm:"not null;type:varchar(100)" json:"product_code"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	SellingPrice decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"selling_price"`
	BaseModel
}

// 計算訂單總金額
// 不落地儲存，讀取時計算
func (o *Order) TotalAmount() decimal.Decimal {
	amount := decimal.NewFromInt(0)
	for _, item := range o.OrderItems {
		amount = amount.Add(item.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return amount
}
