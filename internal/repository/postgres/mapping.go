package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopapi/catalog/internal/domain"
)

// Rows as stored. Column names are snake_case and images.main is 0/1.
type (
	productRow struct {
		ProductID   string
		Title       *string
		Description *string
		Price       *float64
	}

	commentRow struct {
		CommentID string
		Name      string
		Email     string
		Body      string
		ProductID string
	}

	imageRow struct {
		ImageID   string
		URL       string
		ProductID string
		Main      int16
	}
)

func scanProductRow(row pgx.Row) (productRow, error) {
	var r productRow
	err := row.Scan(&r.ProductID, &r.Title, &r.Description, &r.Price)
	return r, err
}

func scanCommentRow(row pgx.Row) (commentRow, error) {
	var r commentRow
	err := row.Scan(&r.CommentID, &r.Name, &r.Email, &r.Body, &r.ProductID)
	return r, err
}

func scanImageRow(row pgx.Row) (imageRow, error) {
	var r imageRow
	err := row.Scan(&r.ImageID, &r.URL, &r.ProductID, &r.Main)
	return r, err
}

// collectRows scans every row and closes rows. The result is never nil.
func collectRows[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func mapProduct(r productRow) domain.Product {
	return domain.Product{
		ID:          r.ProductID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
	}
}

func mapComment(r commentRow) domain.Comment {
	return domain.Comment{
		ID:        r.CommentID,
		Name:      r.Name,
		Email:     r.Email,
		Body:      r.Body,
		ProductID: r.ProductID,
	}
}

func mapImage(r imageRow) domain.Image {
	return domain.Image{
		ID:        r.ImageID,
		URL:       r.URL,
		ProductID: r.ProductID,
		Main:      r.Main != 0,
	}
}

func mapProducts(rows []productRow) []domain.Product { return mapAll(rows, mapProduct) }
func mapComments(rows []commentRow) []domain.Comment { return mapAll(rows, mapComment) }
func mapImages(rows []imageRow) []domain.Image       { return mapAll(rows, mapImage) }

func mapAll[R, D any](rows []R, fn func(R) D) []D {
	out := make([]D, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

func mainFlag(main bool) int16 {
	if main {
		return 1
	}
	return 0
}
