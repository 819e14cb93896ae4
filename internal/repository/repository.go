package repository

import (
	"context"

	"github.com/shopapi/catalog/internal/domain"
)

// ProductFilter holds the optional search criteria. A nil field is not
// applied; an empty filter matches every product.
type ProductFilter struct {
	Title       *string
	Description *string
	PriceFrom   *float64
	PriceTo     *float64
}

// IsEmpty reports whether no criterion is set.
func (f ProductFilter) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.PriceFrom == nil && f.PriceTo == nil
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	// List returns every product in store order.
	List(ctx context.Context) ([]domain.Product, error)

	// Search returns products matching filter.
	Search(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// GetByID returns apperrors.ErrNotFound when no product has id.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	Create(ctx context.Context, product *domain.Product) error

	Delete(ctx context.Context, id string) error
}

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	List(ctx context.Context) ([]domain.Comment, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Comment, error)
	DeleteByProduct(ctx context.Context, productID string) error
}

// ImageRepository defines image persistence operations.
type ImageRepository interface {
	List(ctx context.Context) ([]domain.Image, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Image, error)

	// CreateBatch inserts images for productID in one statement.
	CreateBatch(ctx context.Context, productID string, images []domain.Image) error

	// DeleteByIDs removes the given images and reports how many rows went.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)

	DeleteByProduct(ctx context.Context, productID string) error
}
