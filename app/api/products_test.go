package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilterQueryParams(t *testing.T) {
	tests := []struct {
		name    string
		filters ProductFilters
		want    string
	}{
		{"empty", ProductFilters{}, ""},
		{"search only", ProductFilters{Search: "wool socks"}, "?search=wool+socks"},
		{"category and sort", ProductFilters{Category: "shoes", Sort: "price-asc"},
			"?category=shoes&sort=price-asc"},
		{"price range", ProductFilters{
			MinPrice: decimal.NewFromInt(10),
			MaxPrice: decimal.NewFromFloat(49.99),
		}, "?maxPrice=49.99&minPrice=10"},
		{"tags joined", ProductFilters{Tags: []string{"new", "sale"}},
			"?tags=new%2Csale"},
		{"pagination", ProductFilters{Page: 2, Limit: 20}, "?limit=20&page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.query())
		})
	}
}

func TestGetProductsForwardsFilters(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"p1","name":"Socks","price":"9.99"}],"total":1,"page":2,"limit":20}`))
	}))
	defer srv.Close()

	products := NewProducts(NewClient(srv.URL, nil, zap.NewNop()))
	resp, err := products.GetProducts(context.Background(), ProductFilters{
		Category: "shoes",
		Page:     2,
		Limit:    20,
	})
	require.NoError(t, err)

	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "category=shoes&limit=20&page=2", gotQuery)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p1", resp.Data[0].ID)
	assert.True(t, resp.Data[0].Price.Equal(decimal.NewFromFloat(9.99)))
}

func TestGetProductEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a/b","name":"Odd"}`))
	}))
	defer srv.Close()

	products := NewProducts(NewClient(srv.URL, nil, zap.NewNop()))
	product, err := products.GetProduct(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/products/a%2Fb", gotPath)
	assert.Equal(t, "a/b", product.ID)
}

func TestClientHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, TokenFunc(func() string { return "tok-1" }), zap.NewNop())
	require.NoError(t, client.post(context.Background(), "/echo", map[string]string{"k": "v"}, nil))

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientNoTokenNoAuthHeader(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, TokenFunc(func() string { return "" }), zap.NewNop())
	require.NoError(t, client.get(context.Background(), "/echo", nil))
	assert.False(t, sawAuthHeader)
}

func TestClientNon2xxError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such product"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	products := NewProducts(NewClient(srv.URL, nil, zap.NewNop()))
	_, err := products.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSubmitReviewPostsPayload(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"r1","product_id":"p1","rating":5}`))
	}))
	defer srv.Close()

	reviews := NewReviews(NewClient(srv.URL, nil, zap.NewNop()))
	review, err := reviews.MarkHelpful(context.Background(), "p1", "r1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/products/p1/reviews/r1/helpful", gotPath)
	assert.Equal(t, "r1", review.ID)
}
