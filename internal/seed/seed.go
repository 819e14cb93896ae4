// Package seed generates a deterministic demo catalog and loads it into
// PostgreSQL. Re-running it with the same size replaces the same rows.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/pkg/database"
)

// BatchSize is the number of rows per multi-row INSERT.
const BatchSize = 500

var namespace = uuid.MustParse("6f1c2a8e-3b0d-4c55-9f7e-2d8a61b4c0e9")

var (
	adjectives = []string{"Classic", "Modern", "Compact", "Deluxe", "Vintage", "Smart", "Rustic", "Minimal"}
	nouns      = []string{"Desk Lamp", "Armchair", "Bookshelf", "Coffee Table", "Floor Rug", "Wall Clock", "Ceramic Vase", "Side Table"}
	materials  = []string{"oak", "walnut", "steel", "linen", "ceramic", "bamboo"}
	reviewers  = []string{"Ann", "Bora", "Chen", "Dana", "Emre", "Farah"}
	remarks    = []string{"Great value.", "Arrived quickly.", "Smaller than expected.", "Exactly as pictured.", "Would buy again."}
)

// Dataset is a generated catalog.
type Dataset struct {
	Products []domain.Product
	Comments []domain.Comment
	Images   []domain.Image
}

// ProductIDs returns the IDs of every generated product.
func (d *Dataset) ProductIDs() []string {
	ids := make([]string, len(d.Products))
	for i, p := range d.Products {
		ids[i] = p.ID
	}
	return ids
}

// ID derives a stable UUID for the n-th entity of kind.
func ID(kind string, n int) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s:%d", kind, n))).String()
}

// Generate builds n products with up to three comments and up to four images
// each. The same seed always yields the same dataset.
func Generate(n int, seed uint64) *Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // #nosec G404 -- demo data
	ds := &Dataset{Products: make([]domain.Product, 0, n)}

	var commentSeq, imageSeq int
	for i := range n {
		id := ID("product", i)
		title := fmt.Sprintf("%s %s", adjectives[rng.IntN(len(adjectives))], nouns[rng.IntN(len(nouns))])
		desc := fmt.Sprintf("Made of %s.", materials[rng.IntN(len(materials))])
		price := float64(rng.IntN(99900)+100) / 100

		p := domain.Product{ID: id, Title: &title, Description: &desc, Price: &price}
		// Every tenth product has no price.
		if i%10 == 9 {
			p.Price = nil
		}
		ds.Products = append(ds.Products, p)

		for range rng.IntN(4) {
			name := reviewers[rng.IntN(len(reviewers))]
			ds.Comments = append(ds.Comments, domain.Comment{
				ID:        ID("comment", commentSeq),
				Name:      name,
				Email:     strings.ToLower(name) + "@example.com",
				Body:      remarks[rng.IntN(len(remarks))],
				ProductID: id,
			})
			commentSeq++
		}

		count := rng.IntN(5)
		mainAt := rng.IntN(count + 1)
		for j := range count {
			ds.Images = append(ds.Images, domain.Image{
				ID:        ID("image", imageSeq),
				URL:       fmt.Sprintf("https://cdn.example.com/products/%s/%d.jpg", id, j),
				ProductID: id,
				Main:      j == mainAt,
			})
			imageSeq++
		}
	}
	return ds
}

// Load removes any rows a previous run left for the dataset's products and
// inserts the dataset in batches.
func Load(ctx context.Context, db database.DBTX, ds *Dataset) error {
	ids := ds.ProductIDs()
	for _, stmt := range []string{
		"DELETE FROM images WHERE product_id = ANY($1)",
		"DELETE FROM comments WHERE product_id = ANY($1)",
		"DELETE FROM products WHERE product_id = ANY($1)",
	} {
		if _, err := db.Exec(ctx, stmt, ids); err != nil {
			return fmt.Errorf("clean previous seed: %w", err)
		}
	}

	if err := insertBatches(ctx, db, "products (product_id, title, description, price)", ds.Products,
		func(p domain.Product) []any { return []any{p.ID, p.Title, p.Description, p.Price} }); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	if err := insertBatches(ctx, db, "comments (comment_id, name, email, body, product_id)", ds.Comments,
		func(c domain.Comment) []any { return []any{c.ID, c.Name, c.Email, c.Body, c.ProductID} }); err != nil {
		return fmt.Errorf("insert comments: %w", err)
	}
	if err := insertBatches(ctx, db, "images (image_id, url, product_id, main)", ds.Images,
		func(img domain.Image) []any { return []any{img.ID, img.URL, img.ProductID, mainFlag(img.Main)} }); err != nil {
		return fmt.Errorf("insert images: %w", err)
	}
	return nil
}

func insertBatches[T any](ctx context.Context, db database.DBTX, target string, rows []T, values func(T) []any) error {
	for start := 0; start < len(rows); start += BatchSize {
		end := min(start+BatchSize, len(rows))
		query, args := buildInsert(target, rows[start:end], values)
		if _, err := db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
	}
	return nil
}

func buildInsert[T any](target string, rows []T, values func(T) []any) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(target)
	sb.WriteString(" VALUES ")

	var args []any
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		vals := values(row)
		sb.WriteByte('(')
		for j := range vals {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", len(args)+j+1)
		}
		sb.WriteByte(')')
		args = append(args, vals...)
	}
	return sb.String(), args
}

func mainFlag(main bool) int16 {
	if main {
		return 1
	}
	return 0
}
