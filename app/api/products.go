package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/velmora/storefront/app/models"
)

// ProductFilters are forwarded to the backend as query parameters;
// filtering, sorting and pagination all happen server side.
type ProductFilters struct {
	Category string
	Search   string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     string
	Tags     []string
	Page     int
	Limit    int
}

func (f ProductFilters) query() string {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if !f.MinPrice.IsZero() {
		params.Set("minPrice", f.MinPrice.String())
	}
	if !f.MaxPrice.IsZero() {
		params.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if len(f.Tags) > 0 {
		params.Set("tags", strings.Join(f.Tags, ","))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// Products is the catalog client.
type Products struct {
	client *Client
}

func NewProducts(client *Client) *Products {
	return &Products{client: client}
}

func (p *Products) GetProducts(ctx context.Context, filters ProductFilters) (*models.ProductsResponse, error) {
	var resp models.ProductsResponse
	if err := p.client.get(ctx, "/products"+filters.query(), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return &resp, nil
}

func (p *Products) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.client.get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

func (p *Products) GetCategories(ctx context.Context) ([]models.Category, error) {
	var resp models.CategoriesResponse
	if err := p.client.get(ctx, "/categories", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return resp.Data, nil
}
