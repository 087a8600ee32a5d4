package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/backoffice/internal/api"
	"github.com/RoyceAzure/lab/backoffice/internal/api/dto"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogService service.ICatalogService
}

func NewProductHandler(catalogService service.ICatalogService) *ProductHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var productDTO dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&productDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := productDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid product", fields...))
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), productDTO.ToModel())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	product, err := h.catalogService.GetProduct(r.Context(), code)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var productDTO dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&productDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := productDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid product", fields...))
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), code, productDTO.ToModel())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdateProductStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var statusDTO dto.UpdateProductStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := statusDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid status", fields...))
		return
	}

	if err := h.catalogService.UpdateProductStatus(r.Context(), code, *statusDTO.IsActive); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, *statusDTO.IsActive)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.catalogService.DeleteProduct(r.Context(), code); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) DeleteProducts(w http.ResponseWriter, r *http.Request) {
	var bulkDTO dto.BulkDeleteProductsDTO
	if err := json.NewDecoder(r.Body).Decode(&bulkDTO); err != nil {
		api.ErrorJSON(w, apperr.Validation("invalid request body"))
		return
	}
	if fields := bulkDTO.Validate(); len(fields) > 0 {
		api.ErrorJSON(w, apperr.Validation("invalid request", fields...))
		return
	}

	if _, err := h.catalogService.DeleteProducts(r.Context(), bulkDTO.ProductCodes); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 10)
	filter := db.ListProductsFilter{
		Name: r.URL.Query().Get("name"),
	}

	result, err := h.catalogService.ListProducts(r.Context(), page, pageSize, filter)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")

	products, err := h.catalogService.SearchProducts(r.Context(), term)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.JSON(w, http.StatusOK, products)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1 // 交給service回validation error
	}
	return value
}
