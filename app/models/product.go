package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductImage struct {
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type ProductVariant struct {
	ID                     string            `json:"id"`
	SKU                    string            `json:"sku"`
	Price                  decimal.Decimal   `json:"price"`
	StockQuantity          int               `json:"stockQuantity"`
	LowStockThreshold      int               `json:"lowStockThreshold"`
	CriticalStockThreshold int               `json:"criticalStockThreshold"`
	Attributes             map[string]string `json:"attributes"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product mirrors the backend wire shape. Price is the current/sale
// price; BasePrice is the pre-sale price. price <= basePrice is
// expected from the backend but not enforced here.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	BasePrice      decimal.Decimal   `json:"basePrice"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	Images         []ProductImage    `json:"images"`
	Category       *CategoryRef      `json:"category,omitempty"`
	Variants       []ProductVariant  `json:"variants"`
	Tags           []string          `json:"tags"`
	IsActive       bool              `json:"isActive"`
	AverageRating  float64           `json:"averageRating"`
	ReviewCount    int               `json:"reviewCount"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// MainImage returns the image flagged as main, falling back to the
// first image. Products are assumed to carry at least one image for
// display; an empty URL is returned otherwise.
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parentId,omitempty"`
}

type ProductsResponse struct {
	Data    []Product `json:"data"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Message string    `json:"message,omitempty"`
}

type CategoriesResponse struct {
	Data    []Category `json:"data"`
	Message string     `json:"message,omitempty"`
}
