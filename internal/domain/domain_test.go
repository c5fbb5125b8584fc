package domain

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("elektronik").Valid())
	assert.False(t, Category("").Valid())
}

func TestItemPatch_DecodeNullIsAbsent(t *testing.T) {
	var p ItemPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"stock":0}`), &p))
	assert.Nil(t, p.Name)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 0, *p.Stock)
	assert.False(t, p.Empty())

	var empty ItemPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.Empty())
}

func TestItemPatch_ApplyTo(t *testing.T) {
	base := Item{ID: "1", Name: "Kaos Polos", Code: "PKN01", Category: CategoryPakaian, Stock: 4, Price: 50000}
	name, stock := "", 0

	got := ItemPatch{Name: &name, Stock: &stock}.ApplyTo(base)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, base.Code, got.Code)
	assert.Equal(t, base.Price, got.Price)
	assert.Equal(t, "Kaos Polos", base.Name, "original untouched")

	assert.Equal(t, base, ItemPatch{}.ApplyTo(base))
}

func TestItem_Input(t *testing.T) {
	it := Item{Name: "Roti", Code: "MKN1", Category: CategoryMakanan, Stock: 2, Price: 8000}
	in := it.Input()
	require.NotNil(t, in.Stock)
	require.NotNil(t, in.Price)
	assert.Equal(t, 2, *in.Stock)
	assert.Equal(t, 8000.0, *in.Price)

	*in.Stock = 9
	assert.Equal(t, 2, it.Stock)
}

func TestAppErrors(t *testing.T) {
	tests := []struct {
		err  AppError
		code int
		msg  string
	}{
		{NewValidationError(nil), http.StatusBadRequest, MsgValidationFailed},
		{NewAuthenticationError(MsgInvalidCredentials), http.StatusUnauthorized, MsgInvalidCredentials},
		{&NotFoundError{ID: "x"}, http.StatusNotFound, MsgItemNotFound},
		{&DuplicateCodeError{Code: "BRG001"}, http.StatusBadRequest, MsgDuplicateCode},
		{&ConstraintViolationError{ID: "x", Stock: 3}, http.StatusBadRequest, MsgStockNotEmpty},
		{NewStorageError(errors.New("disk full"), "rename"), http.StatusInternalServerError, MsgSaveFailed},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.Equal(t, tt.msg, tt.err.Message())
		})
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := errors.Wrap(&NotFoundError{ID: "x"}, "load")
	ae, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.HTTPCode())

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestStorageError_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	se := NewStorageError(cause, "write temp file")
	assert.ErrorIs(t, se, cause)
	assert.Contains(t, se.Error(), "write temp file: disk full")
}

func TestValidationError_Messages(t *testing.T) {
	ve := NewValidationError([]FieldError{{Field: "name", Message: "a"}, {Field: "code", Message: "b"}})
	assert.Equal(t, []string{"a", "b"}, ve.Messages())
	assert.Equal(t, []string{}, NewValidationError(nil).Messages())
}
