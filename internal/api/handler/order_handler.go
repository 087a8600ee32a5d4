package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/backoffice/internal/api"
	"github.com/RoyceAzure/lab/backoffice/internal/api/dto"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var orderDTO dto.OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := orderDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid order", fields...))
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), orderDTO.ToDraft())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var orderDTO dto.OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := orderDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid order", fields...))
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), code, orderDTO.ToDraft())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	order, err := h.orderService.GetOrder(r.Context(), code)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, dto.NewOrderResponses(orders))
}
