package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrOrderItemProductNotFound 訂單項目引用的商品不存在或已下架
	ErrOrderItemProductNotFound = errors.New("order item references unknown product")
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 建立訂單
// 在同一個事務內重新驗證每個項目的商品編號還存在且上架中，再寫入訂單與項目
// 驗證跟寫入之間不能有商品被刪掉的空窗，全部成功或全部不寫
func (s *OrderRepo) CreateOrderChecked(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOrderItemProducts(tx, order.OrderItems); err != nil {
			return err
		}
		return tx.Create(order).Error
	})
}

// Update - 整筆替換訂單
// 客戶資訊與項目清單一起換掉，沿用建立時的商品驗證
func (s *OrderRepo) UpdateOrderChecked(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOrderItemProducts(tx, order.OrderItems); err != nil {
			return err
		}

		// 先清掉舊項目再寫新項目，不做逐筆比對
		if err := tx.Unscoped().Where("order_id = ?", order.OrderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range order.OrderItems {
			order.OrderItems[i].ItemID = 0
			order.OrderItems[i].OrderID = order.OrderID
		}
		return tx.Save(order).Error
	})
}

func checkOrderItemProducts(tx *gorm.DB, items []model.OrderItem) error {
	for _, item := range items {
		var count int64
		if err := tx.Model(&model.Product{}).
			Where("code = ? AND is_active = ?", item.ProductCode, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderItemProductNotFound
		}
	}
	return nil
}

// Read - 依訂單編號查詢
func (s *OrderRepo) GetOrderByCode(ctx context.Context, code string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Where("code = ?", code).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Order("order_date DESC").Find(&orders).Error
	return orders, err
}

// Delete - 軟刪除訂單
func (s *OrderRepo) DeleteOrder(ctx context.Context, code string) (int64, error) {
	result := s.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Order{})
	return result.RowsAffected, result.Error
}
