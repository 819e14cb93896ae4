package postgres

import (
	"fmt"
	"strings"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
)

const (
	selectProductsQuery    = `SELECT product_id, title, description, price FROM products`
	selectProductByIDQuery = selectProductsQuery + ` WHERE product_id = $1`
	insertProductQuery     = `INSERT INTO products (product_id, title, description, price) VALUES ($1, $2, $3, $4)`
	deleteProductQuery     = `DELETE FROM products WHERE product_id = $1`

	selectCommentsQuery          = `SELECT comment_id, name, email, body, product_id FROM comments`
	selectCommentsByProductQuery = selectCommentsQuery + ` WHERE product_id = $1`
	deleteCommentsByProductQuery = `DELETE FROM comments WHERE product_id = $1`

	selectImagesQuery          = `SELECT image_id, url, product_id, main FROM images`
	selectImagesByProductQuery = selectImagesQuery + ` WHERE product_id = $1`
	insertImagesQueryPrefix    = `INSERT INTO images (image_id, url, product_id, main) VALUES `
	deleteImagesByIDsQuery     = `DELETE FROM images WHERE image_id = ANY($1)`
	deleteImagesByProductQuery = `DELETE FROM images WHERE product_id = $1`
)

const imageInsertColumns = 4

// buildInsertImagesQuery returns a single multi-row INSERT for images, all
// owned by productID.
func buildInsertImagesQuery(productID string, images []domain.Image) (string, []any) {
	var sb strings.Builder
	sb.WriteString(insertImagesQueryPrefix)

	args := make([]any, 0, len(images)*imageInsertColumns)
	for i, img := range images {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * imageInsertColumns
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, img.ID, img.URL, productID, mainFlag(img.Main))
	}
	return sb.String(), args
}

// buildFilterQuery ANDs one parameterized predicate per criterion present in
// f. Text criteria match case-insensitive substrings; price bounds are
// inclusive. An empty filter yields selectProductsQuery with no arguments.
func buildFilterQuery(f repository.ProductFilter) (string, []any) {
	if f.IsEmpty() {
		return selectProductsQuery, nil
	}

	var (
		conditions []string
		args       []any
	)
	add := func(fragment string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(fragment, len(args)))
	}

	if f.Title != nil {
		add("title ILIKE $%d", "%"+*f.Title+"%")
	}
	if f.Description != nil {
		add("description ILIKE $%d", "%"+*f.Description+"%")
	}
	if f.PriceFrom != nil {
		add("price >= $%d", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		add("price <= $%d", *f.PriceTo)
	}

	return selectProductsQuery + " WHERE " + strings.Join(conditions, " AND "), args
}
