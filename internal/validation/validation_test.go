package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory-api/internal/domain"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func fields(errs []domain.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func validInput() domain.ItemInput {
	return domain.ItemInput{
		Name:     "Laptop",
		Code:     "BRG001",
		Category: domain.CategoryElektronik,
		Stock:    intPtr(5),
		Price:    floatPtr(1500000),
	}
}

func TestValidateItem_Valid(t *testing.T) {
	errs := ValidateItem(validInput())
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestValidateItem_ReportsEveryViolatedField(t *testing.T) {
	in := domain.ItemInput{
		Name:     "AB",
		Code:     "X",
		Category: domain.CategoryElektronik,
		Stock:    intPtr(-1),
		Price:    floatPtr(0),
	}
	errs := ValidateItem(in)
	// "X" is a valid one-char alphanumeric code, so only three fields fail.
	assert.Equal(t, []string{"name", "stock", "price"}, fields(errs))
	assert.Equal(t, MsgName, errs[0].Message)
	assert.Equal(t, MsgStock, errs[1].Message)
	assert.Equal(t, MsgPrice, errs[2].Message)
}

func TestValidateItem_AllFieldsInOrder(t *testing.T) {
	errs := ValidateItem(domain.ItemInput{Name: " ", Code: "BRG-001", Category: "Mainan"})
	assert.Equal(t, []string{"name", "code", "category", "stock", "price"}, fields(errs))
}

func TestValidateItem_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.ItemInput)
		wantF []string
	}{
		{"name exactly three chars", func(in *domain.ItemInput) { in.Name = "ABC" }, []string{}},
		{"name padded to three", func(in *domain.ItemInput) { in.Name = "  AB  " }, []string{"name"}},
		{"multibyte name", func(in *domain.ItemInput) { in.Name = "äöü" }, []string{}},
		{"empty code", func(in *domain.ItemInput) { in.Code = "" }, []string{"code"}},
		{"code with space", func(in *domain.ItemInput) { in.Code = "BRG 01" }, []string{"code"}},
		{"lowercase code", func(in *domain.ItemInput) { in.Code = "brg001" }, []string{}},
		{"category is case sensitive", func(in *domain.ItemInput) { in.Category = "elektronik" }, []string{"category"}},
		{"zero stock", func(in *domain.ItemInput) { in.Stock = intPtr(0) }, []string{}},
		{"missing stock", func(in *domain.ItemInput) { in.Stock = nil }, []string{"stock"}},
		{"tiny price", func(in *domain.ItemInput) { in.Price = floatPtr(0.01) }, []string{}},
		{"negative price", func(in *domain.ItemInput) { in.Price = floatPtr(-5) }, []string{"price"}},
		{"missing price", func(in *domain.ItemInput) { in.Price = nil }, []string{"price"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)
			assert.Equal(t, tt.wantF, fields(ValidateItem(in)))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, ValidateLogin("admin", "admin123"))
	assert.Equal(t, []string{"username", "password"}, fields(ValidateLogin("", "")))
	assert.Equal(t, []string{"username"}, fields(ValidateLogin("   ", "x")))
	// passwords are not trimmed
	assert.Empty(t, ValidateLogin("admin", " "))

	errs := ValidateLogin("admin", "")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, MsgPassword, errs[0].Message)
	}
}
