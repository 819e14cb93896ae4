package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
)

func TestBuildFilterQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    repository.ProductFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty filter is select all",
			filter:    repository.ProductFilter{},
			wantQuery: selectProductsQuery,
			wantArgs:  nil,
		},
		{
			name:      "title only",
			filter:    repository.ProductFilter{Title: strPtr("lamp")},
			wantQuery: selectProductsQuery + " WHERE title ILIKE $1",
			wantArgs:  []any{"%lamp%"},
		},
		{
			name:      "price range is inclusive",
			filter:    repository.ProductFilter{PriceFrom: float64Ptr(10), PriceTo: float64Ptr(20)},
			wantQuery: selectProductsQuery + " WHERE price >= $1 AND price <= $2",
			wantArgs:  []any{10.0, 20.0},
		},
		{
			name:      "lower bound only",
			filter:    repository.ProductFilter{PriceFrom: float64Ptr(9.99)},
			wantQuery: selectProductsQuery + " WHERE price >= $1",
			wantArgs:  []any{9.99},
		},
		{
			name:      "upper bound only",
			filter:    repository.ProductFilter{PriceTo: float64Ptr(20.01)},
			wantQuery: selectProductsQuery + " WHERE price <= $1",
			wantArgs:  []any{20.01},
		},
		{
			name: "all criteria numbered in order",
			filter: repository.ProductFilter{
				Title:       strPtr("desk"),
				Description: strPtr("oak"),
				PriceFrom:   float64Ptr(0),
				PriceTo:     float64Ptr(99.99),
			},
			wantQuery: selectProductsQuery +
				" WHERE title ILIKE $1 AND description ILIKE $2 AND price >= $3 AND price <= $4",
			wantArgs: []any{"%desk%", "%oak%", 0.0, 99.99},
		},
		{
			name:      "injection attempt stays a parameter",
			filter:    repository.ProductFilter{Description: strPtr("'; DROP TABLE products; --")},
			wantQuery: selectProductsQuery + " WHERE description ILIKE $1",
			wantArgs:  []any{"%'; DROP TABLE products; --%"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildFilterQuery(tc.filter)
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildInsertImagesQuery(t *testing.T) {
	images := []domain.Image{
		{ID: "i-1", URL: "https://cdn.example.com/1.png", ProductID: "ignored", Main: true},
		{ID: "i-2", URL: "https://cdn.example.com/2.png"},
	}

	query, args := buildInsertImagesQuery("p-1", images)

	assert.Equal(t,
		"INSERT INTO images (image_id, url, product_id, main) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)",
		query)
	assert.Equal(t, []any{
		"i-1", "https://cdn.example.com/1.png", "p-1", int16(1),
		"i-2", "https://cdn.example.com/2.png", "p-1", int16(0),
	}, args)
}
