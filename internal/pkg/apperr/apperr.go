package apperr

import (
	"errors"
	"fmt"
)

type Code int

const (
	ValidationCode Code = iota + 1
	NotFoundCode
	ConflictCode
	StoreCode
)

// 欄位層級的錯誤明細，給前端顯示用
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// 服務層統一錯誤型別
// Internal 只做log，不會序列化給呼叫端
type Error struct {
	Code     Code         `json:"-"`
	Message  string       `json:"error"`
	Fields   []FieldError `json:"fields,omitempty"`
	Internal error        `json:"-"`
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Internal
}

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Code: ValidationCode, Message: message, Fields: fields}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: NotFoundCode, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Code: ConflictCode, Message: fmt.Sprintf(format, args...)}
}

// 底層儲存錯誤，對外只給通用訊息
func Store(err error) *Error {
	return &Error{Code: StoreCode, Message: "internal storage failure", Internal: err}
}

// 取得錯誤分類，非 *Error 一律視為 StoreCode
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return StoreCode
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
