package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/producer"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// OrderItemDraft 下單項目
// 呼叫端給的價格不採用，一律以目錄現價為準
type OrderItemDraft struct {
	ProductCode string
	Quantity    int
}

// OrderDraft 下單內容
type OrderDraft struct {
	CustomerName  string
	CustomerPhone string
	Items         []OrderItemDraft
}

type IOrderService interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (*model.Order, error)
	UpdateOrder(ctx context.Context, code string, draft OrderDraft) (*model.Order, error)
	GetOrder(ctx context.Context, code string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
}

// 訂單服務只透過目錄服務的讀取路徑驗證商品，不會改動商品主檔
type OrderService struct {
	orderRepo db.IOrderRepository
	catalog   ICatalogService
	events    producer.IOrderEventProducer
}

// events 可為nil，沒接kafka時事件直接略過
func NewOrderService(orderRepo db.IOrderRepository, catalog ICatalogService, events producer.IOrderEventProducer) *OrderService {
	return &OrderService{orderRepo: orderRepo, catalog: catalog, events: events}
}

// 驗證下單內容並以目錄現價建立項目快照
// 任何一個編號查不到就整張失敗，不會產生部分訂單
func (o *OrderService) buildOrderItems(ctx context.Context, items []OrderItemDraft) ([]model.OrderItem, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("order must contain at least one item",
			apperr.FieldError{Field: "order_items", Reason: "must not be empty"})
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for i, item := range items {
		if item.Quantity < 1 {
			return nil, apperr.Validation("invalid order item",
				apperr.FieldError{Field: fmt.Sprintf("order_items[%d].quantity", i), Reason: "must be at least 1"})
		}

		product, err := o.catalog.GetActiveProduct(ctx, item.ProductCode)
		if err != nil {
			if apperr.IsCode(err, apperr.NotFoundCode) {
				return nil, apperr.Validation(fmt.Sprintf("unknown product code %s", item.ProductCode),
					apperr.FieldError{Field: fmt.Sprintf("order_items[%d].product_code", i), Reason: "unknown product code"})
			}
			return nil, err
		}

		// 下單當下的價格快照
		orderItems = append(orderItems, model.OrderItem{
			ProductCode:  product.Code,
			Quantity:     item.Quantity,
			SellingPrice: product.SellingPrice,
		})
	}
	return orderItems, nil
}

func validateCustomer(draft OrderDraft) []apperr.FieldError {
	var fields []apperr.FieldError
	if draft.CustomerName == "" {
		fields = append(fields, apperr.FieldError{Field: "customer_name", Reason: "must not be empty"})
	}
	if draft.CustomerPhone == "" {
		fields = append(fields, apperr.FieldError{Field: "customer_phone", Reason: "must not be empty"})
	}
	return fields
}

// 建立訂單
// 項目驗證與寫入在repo的同一個事務內完成，驗證後商品被刪掉不會留下懸空引用
func (o *OrderService) CreateOrder(ctx context.Context, draft OrderDraft) (*model.Order, error) {
	if fields := validateCustomer(draft); len(fields) > 0 {
		return nil, apperr.Validation("invalid order", fields...)
	}

	orderItems, err := o.buildOrderItems(ctx, draft.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Code:          newOrderCode(),
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		OrderItems:    orderItems,
		OrderDate:     time.Now().UTC(),
	}

	if err := o.orderRepo.CreateOrderChecked(ctx, order); err != nil {
		return nil, wrapOrderStoreErr(err)
	}

	o.publish(ctx, producer.OrderEventCreated, order)
	return order, nil
}

// 整筆替換訂單，沿用建立時的驗證流程
func (o *OrderService) UpdateOrder(ctx context.Context, code string, draft OrderDraft) (*model.Order, error) {
	existing, err := o.GetOrder(ctx, code)
	if err != nil {
		return nil, err
	}

	if fields := validateCustomer(draft); len(fields) > 0 {
		return nil, apperr.Validation("invalid order", fields...)
	}

	orderItems, err := o.buildOrderItems(ctx, draft.Items)
	if err != nil {
		return nil, err
	}

	existing.CustomerName = draft.CustomerName
	existing.CustomerPhone = draft.CustomerPhone
	existing.OrderItems = orderItems

	if err := o.orderRepo.UpdateOrderChecked(ctx, existing); err != nil {
		return nil, wrapOrderStoreErr(err)
	}

	o.publish(ctx, producer.OrderEventUpdated, existing)
	return existing, nil
}

func (o *OrderService) GetOrder(ctx context.Context, code string) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %s not found", code)
		}
		return nil, apperr.Store(err)
	}
	return order, nil
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := o.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return orders, nil
}

// 事件發布失敗只記log，不影響主流程
func (o *OrderService) publish(ctx context.Context, eventType producer.OrderEventType, order *model.Order) {
	if o.events == nil {
		return
	}

	var err error
	switch eventType {
	case producer.OrderEventCreated:
		err = o.events.OrderCreated(ctx, order)
	case producer.OrderEventUpdated:
		err = o.events.OrderUpdated(ctx, order)
	}
	if err != nil {
		log.Warn().Err(err).Str("order_code", order.Code).Str("event_type", string(eventType)).Msg("publish order event failed")
	}
}

// repo 在事務內重驗商品，撞到的話一樣當成驗證錯誤回給呼叫端
func wrapOrderStoreErr(err error) error {
	if errors.Is(err, db.ErrOrderItemProductNotFound) {
		return apperr.Validation("order item references unknown product",
			apperr.FieldError{Field: "order_items", Reason: "product was removed during order creation"})
	}
	return apperr.Store(err)
}

func newOrderCode() string {
	return fmt.Sprintf("O-%s", uuid.New().String())
}

var _ IOrderService = (*OrderService)(nil)
