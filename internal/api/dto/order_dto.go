package dto

import (
	"fmt"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/backoffice/internal/service"
	"github.com/shopspring/decimal"
)

// OrderItemDTO 下單項目
// selling_price 僅供畫面顯示，後端一律以目錄現價為準
type OrderItemDTO struct {
	ProductCode  string          `json:"product_code"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// OrderDTO 下單請求內容
type OrderDTO struct {
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	OrderItems    []OrderItemDTO `json:"order_items"`
}

func (d *OrderDTO) Validate() []apperr.FieldError {
	var fields []apperr.FieldError
	if d.CustomerName == "" {
		fields = append(fields, apperr.FieldError{Field: "customer_name", Reason: "required"})
	}
	if d.CustomerPhone == "" {
		fields = append(fields, apperr.FieldError{Field: "customer_phone", Reason: "required"})
	}
	if len(d.OrderItems) == 0 {
		fields = append(fields, apperr.FieldError{Field: "order_items", Reason: "required"})
	}
	for i, item := range d.OrderItems {
		if item.ProductCode == "" {
			fields = append(fields, apperr.FieldError{Field: fmt.Sprintf("order_items[%d].product_code", i), Reason: "required"})
		}
	}
	return fields
}

func (d *OrderDTO) ToDraft() service.OrderDraft {
	items := make([]service.OrderItemDraft, 0, len(d.OrderItems))
	for _, item := range d.OrderItems {
		items = append(items, service.OrderItemDraft{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
		})
	}
	return service.OrderDraft{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         items,
	}
}

// OrderResponse 訂單回應，帶計算後的總金額
type OrderResponse struct {
	*model.Order
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func NewOrderResponse(order *model.Order) OrderResponse {
	return OrderResponse{Order: order, TotalAmount: order.TotalAmount()}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, NewOrderResponse(&orders[i]))
	}
	return responses
}
