package domain

import "time"

type Category string

const (
	CategoryElektronik Category = "Elektronik"
	CategoryPakaian    Category = "Pakaian"
	CategoryMakanan    Category = "Makanan"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{CategoryElektronik, CategoryPakaian, CategoryMakanan}
}

func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Category  Category  `json:"category"`
	Stock     int       `json:"stock"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemInput is an item candidate without system-assigned fields.
// Stock and Price are pointers so a missing number can be told apart from zero.
type ItemInput struct {
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Category Category `json:"category"`
	Stock    *int     `json:"stock"`
	Price    *float64 `json:"price"`
}

// Input returns the item's user-editable fields as a candidate.
func (it Item) Input() ItemInput {
	stock, price := it.Stock, it.Price
	return ItemInput{
		Name:     it.Name,
		Code:     it.Code,
		Category: it.Category,
		Stock:    &stock,
		Price:    &price,
	}
}

// ItemPatch is a partial update. A nil field is absent from the patch;
// a JSON null is decoded as absent too.
type ItemPatch struct {
	Name     *string   `json:"name"`
	Code     *string   `json:"code"`
	Category *Category `json:"category"`
	Stock    *int      `json:"stock"`
	Price    *float64  `json:"price"`
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Code == nil && p.Category == nil && p.Stock == nil && p.Price == nil
}

// ApplyTo merges every present field onto it. Zero values and empty strings
// are applied like any other value.
func (p ItemPatch) ApplyTo(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Code != nil {
		it.Code = *p.Code
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Stock != nil {
		it.Stock = *p.Stock
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	return it
}

// ItemRepository is the durable owner of the item collection.
// Implementations reload on every call; there is no cache to invalidate.
type ItemRepository interface {
	LoadAll() []Item
	SaveAll(items []Item) error
	FindByID(id string) *Item
	FindByCode(code string) *Item
}
