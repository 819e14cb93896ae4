package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
	"github.com/shopapi/catalog/pkg/database"
	apperrors "github.com/shopapi/catalog/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns every product.
func (r *ProductRepository) List(ctx context.Context) (_ []domain.Product, err error) {
	ctx, end := database.TraceQuery(ctx, "ListProducts", selectProductsQuery)
	defer func() { end(err) }()

	return r.query(ctx, "list products", selectProductsQuery)
}

// Search returns products matching filter.
func (r *ProductRepository) Search(ctx context.Context, filter repository.ProductFilter) (_ []domain.Product, err error) {
	query, args := buildFilterQuery(filter)

	ctx, end := database.TraceQuery(ctx, "SearchProducts", query)
	defer func() { end(err) }()

	return r.query(ctx, "search products", query, args...)
}

func (r *ProductRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	productRows, err := collectRows(rows, scanProductRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return mapProducts(productRows), nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, end := database.TraceQuery(ctx, "GetProduct", selectProductByIDQuery)

	row, err := scanProductRow(r.db.QueryRow(ctx, selectProductByIDQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		end(nil)
		return nil, apperrors.ErrNotFound
	}
	end(err)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}

	p := mapProduct(row)
	return &p, nil
}

// Create inserts a product row. Images are stored separately.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (err error) {
	ctx, end := database.TraceQuery(ctx, "InsertProduct", insertProductQuery)
	defer func() { end(err) }()

	if _, err = r.db.Exec(ctx, insertProductQuery, p.ID, p.Title, p.Description, p.Price); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Delete removes the product row only; callers remove its images and
// comments first.
func (r *ProductRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, end := database.TraceQuery(ctx, "DeleteProduct", deleteProductQuery)
	defer func() { end(err) }()

	if _, err = r.db.Exec(ctx, deleteProductQuery, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
