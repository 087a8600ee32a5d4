package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	require.Equal(t, ValidationCode, CodeOf(Validation("bad input")))
	require.Equal(t, NotFoundCode, CodeOf(NotFound("product %s not found", "P1")))
	require.Equal(t, ConflictCode, CodeOf(Conflict("duplicate")))
	require.Equal(t, StoreCode, CodeOf(Store(errors.New("db down"))))

	// 非 *Error 一律視為 StoreCode
	require.Equal(t, StoreCode, CodeOf(errors.New("unknown")))
}

func TestCodeOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("order %s not found", "O1"))
	require.Equal(t, NotFoundCode, CodeOf(wrapped))
	require.True(t, IsCode(wrapped, NotFoundCode))
}

func TestStore_HidesInternal(t *testing.T) {
	internal := errors.New("pq: connection refused")
	err := Store(internal)

	// 對外訊息不含內部細節，Unwrap 仍可取得
	require.Equal(t, "internal storage failure", err.Message)
	require.ErrorIs(t, err, internal)
}

func TestValidation_Fields(t *testing.T) {
	err := Validation("invalid product",
		FieldError{Field: "name", Reason: "must not be empty"},
		FieldError{Field: "tax_rate", Reason: "must be between 0 and 100"},
	)

	require.Len(t, err.Fields, 2)
	require.Equal(t, "name", err.Fields[0].Field)
}
