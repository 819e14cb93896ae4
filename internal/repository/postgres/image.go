package postgres

import (
	"context"
	"fmt"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/pkg/database"
)

// ImageRepository implements repository.ImageRepository using PostgreSQL.
type ImageRepository struct {
	db database.DBTX
}

// NewImageRepository creates a new PostgreSQL-backed image repository.
func NewImageRepository(db database.DBTX) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) List(ctx context.Context) (_ []domain.Image, err error) {
	ctx, end := database.TraceQuery(ctx, "ListImages", selectImagesQuery)
	defer func() { end(err) }()

	return r.query(ctx, "list images", selectImagesQuery)
}

func (r *ImageRepository) ListByProduct(ctx context.Context, productID string) (_ []domain.Image, err error) {
	ctx, end := database.TraceQuery(ctx, "ListProductImages", selectImagesByProductQuery)
	defer func() { end(err) }()

	return r.query(ctx, "list product images", selectImagesByProductQuery, productID)
}

func (r *ImageRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Image, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	imageRows, err := collectRows(rows, scanImageRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return mapImages(imageRows), nil
}

// CreateBatch inserts images for productID. An empty batch is a no-op.
func (r *ImageRepository) CreateBatch(ctx context.Context, productID string, images []domain.Image) (err error) {
	if len(images) == 0 {
		return nil
	}
	query, args := buildInsertImagesQuery(productID, images)

	ctx, end := database.TraceQuery(ctx, "InsertImages", query)
	defer func() { end(err) }()

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert images: %w", err)
	}
	return nil
}

// DeleteByIDs removes the images with the given IDs and returns the number
// of rows deleted. Unknown IDs are ignored.
func (r *ImageRepository) DeleteByIDs(ctx context.Context, ids []string) (_ int64, err error) {
	ctx, end := database.TraceQuery(ctx, "DeleteImages", deleteImagesByIDsQuery)
	defer func() { end(err) }()

	tag, err := r.db.Exec(ctx, deleteImagesByIDsQuery, ids)
	if err != nil {
		return 0, fmt.Errorf("delete images: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ImageRepository) DeleteByProduct(ctx context.Context, productID string) (err error) {
	ctx, end := database.TraceQuery(ctx, "DeleteProductImages", deleteImagesByProductQuery)
	defer func() { end(err) }()

	if _, err = r.db.Exec(ctx, deleteImagesByProductQuery, productID); err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	return nil
}
