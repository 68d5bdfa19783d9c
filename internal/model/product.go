package model

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a single catalog row and its stock level.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Category    string          `gorm:"type:text;not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	SKU         string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	Description string          `gorm:"type:text" json:"description"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
}

func (Product) TableName() string { return "products" }

// AllCategories is the list sentinel meaning "no category filter".
const AllCategories = "All"

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	Search   string
	Category string
}

// HasCategory reports whether the filter restricts by category.
func (f ProductFilter) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// ProductInput is the request body for create and full update.
// Pointers distinguish a missing price/quantity from an explicit zero.
type ProductInput struct {
	Name        string           `json:"name" validate:"required,notblank"`
	Category    string           `json:"category" validate:"required,notblank"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
	SKU         string           `json:"sku" validate:"required,notblank"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
}

// QuantityInput is the request body for the quantity-only update.
type QuantityInput struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}
