// Package validation holds the pure input checks for items and logins.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"inventory-api/internal/domain"
)

const (
	MsgName     = "Nama barang wajib diisi minimal 3 karakter"
	MsgCode     = "Kode barang wajib alfanumerik (contoh: BRG001)"
	MsgCategory = "Kategori harus salah satu dari: Elektronik, Pakaian, Makanan"
	MsgStock    = "Stok tidak boleh negatif"
	MsgPrice    = "Harga wajib angka lebih besar dari 0"
	MsgUsername = "Username wajib diisi"
	MsgPassword = "Password wajib diisi"
)

// itemRules mirrors domain.ItemInput; field order is the reporting order.
type itemRules struct {
	Name     string   `validate:"trimmed_min=3"`
	Code     string   `validate:"required,alphanum"`
	Category string   `validate:"category"`
	Stock    *int     `validate:"required,gte=0"`
	Price    *float64 `validate:"required,gt=0"`
}

type loginRules struct {
	Username string `validate:"notblank"`
	Password string `validate:"required"`
}

var fieldMessages = map[string]domain.FieldError{
	"Name":     {Field: "name", Message: MsgName},
	"Code":     {Field: "code", Message: MsgCode},
	"Category": {Field: "category", Message: MsgCategory},
	"Stock":    {Field: "stock", Message: MsgStock},
	"Price":    {Field: "price", Message: MsgPrice},
	"Username": {Field: "username", Message: MsgUsername},
	"Password": {Field: "password", Message: MsgPassword},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("trimmed_min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	return v
}

// ValidateItem checks a fully merged item candidate. Every rule runs, so the
// result lists all violated fields in name, code, category, stock, price order.
func ValidateItem(in domain.ItemInput) []domain.FieldError {
	return collect(validate.Struct(itemRules{
		Name:     in.Name,
		Code:     in.Code,
		Category: string(in.Category),
		Stock:    in.Stock,
		Price:    in.Price,
	}))
}

// ValidateLogin requires a non-blank username and a non-empty password.
// The password is not trimmed.
func ValidateLogin(username, password string) []domain.FieldError {
	return collect(validate.Struct(loginRules{Username: username, Password: password}))
}

func collect(err error) []domain.FieldError {
	out := []domain.FieldError{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable on a programming error in the rule structs
		return append(out, domain.FieldError{Field: "", Message: err.Error()})
	}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		name := fe.StructField()
		if seen[name] {
			continue
		}
		seen[name] = true
		if m, ok := fieldMessages[name]; ok {
			out = append(out, m)
		}
	}
	return out
}
