package domain

import (
	"net/http"

	"github.com/pkg/errors"
)

const (
	MsgValidationFailed   = "Validation failed"
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidCredentials = "Username atau password salah"
	MsgItemNotFound       = "Barang tidak ditemukan"
	MsgDuplicateCode      = "Kode barang sudah ada"
	MsgStockNotEmpty      = "Tidak bisa menghapus barang dengan stok > 0"
	MsgSaveFailed         = "Failed to save items"
	MsgInternal           = "Internal server error"
)

// AppError is an error whose message is safe to show to the client.
type AppError interface {
	error
	HTTPCode() int
	Message() string
}

// FieldError is one violated field. Validators return them in check order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string   { return MsgValidationFailed }
func (e *ValidationError) HTTPCode() int   { return http.StatusBadRequest }
func (e *ValidationError) Message() string { return MsgValidationFailed }

// Messages flattens the field errors into the response "errors" list.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

type AuthenticationError struct {
	msg string
}

func NewAuthenticationError(msg string) *AuthenticationError {
	return &AuthenticationError{msg: msg}
}

func (e *AuthenticationError) Error() string   { return e.msg }
func (e *AuthenticationError) HTTPCode() int   { return http.StatusUnauthorized }
func (e *AuthenticationError) Message() string { return e.msg }

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string   { return MsgItemNotFound }
func (e *NotFoundError) HTTPCode() int   { return http.StatusNotFound }
func (e *NotFoundError) Message() string { return MsgItemNotFound }

type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string   { return MsgDuplicateCode }
func (e *DuplicateCodeError) HTTPCode() int   { return http.StatusBadRequest }
func (e *DuplicateCodeError) Message() string { return MsgDuplicateCode }

type ConstraintViolationError struct {
	ID    string
	Stock int
}

func (e *ConstraintViolationError) Error() string   { return MsgStockNotEmpty }
func (e *ConstraintViolationError) HTTPCode() int   { return http.StatusBadRequest }
func (e *ConstraintViolationError) Message() string { return MsgStockNotEmpty }

// StorageError hides the I/O cause from clients but keeps it for logs.
type StorageError struct {
	Err error
}

func NewStorageError(err error, msg string) *StorageError {
	return &StorageError{Err: errors.Wrap(err, msg)}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return MsgSaveFailed
	}
	return MsgSaveFailed + ": " + e.Err.Error()
}
func (e *StorageError) Unwrap() error   { return e.Err }
func (e *StorageError) HTTPCode() int   { return http.StatusInternalServerError }
func (e *StorageError) Message() string { return MsgSaveFailed }

// AsAppError reports whether err (or anything it wraps) carries a client-safe message.
func AsAppError(err error) (AppError, bool) {
	var ae AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
