package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/backoffice/internal/pkg/apperr"
)

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// ErrorJSON 依錯誤分類對應HTTP狀態碼
// StoreCode 不回傳內部錯誤細節
func ErrorJSON(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Store(err)
	}

	var status int
	switch appErr.Code {
	case apperr.ValidationCode:
		status = http.StatusBadRequest
	case apperr.NotFoundCode:
		status = http.StatusNotFound
	case apperr.ConflictCode:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	JSON(w, status, appErr)
}
