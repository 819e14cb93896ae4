package postgres

import (
	"context"
	"fmt"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/pkg/database"
)

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db database.DBTX
}

// NewCommentRepository creates a new PostgreSQL-backed comment repository.
func NewCommentRepository(db database.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) List(ctx context.Context) (_ []domain.Comment, err error) {
	ctx, end := database.TraceQuery(ctx, "ListComments", selectCommentsQuery)
	defer func() { end(err) }()

	return r.query(ctx, "list comments", selectCommentsQuery)
}

func (r *CommentRepository) ListByProduct(ctx context.Context, productID string) (_ []domain.Comment, err error) {
	ctx, end := database.TraceQuery(ctx, "ListProductComments", selectCommentsByProductQuery)
	defer func() { end(err) }()

	return r.query(ctx, "list product comments", selectCommentsByProductQuery, productID)
}

func (r *CommentRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	commentRows, err := collectRows(rows, scanCommentRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return mapComments(commentRows), nil
}

func (r *CommentRepository) DeleteByProduct(ctx context.Context, productID string) (err error) {
	ctx, end := database.TraceQuery(ctx, "DeleteProductComments", deleteCommentsByProductQuery)
	defer func() { end(err) }()

	if _, err = r.db.Exec(ctx, deleteCommentsByProductQuery, productID); err != nil {
		return fmt.Errorf("delete product comments: %w", err)
	}
	return nil
}
