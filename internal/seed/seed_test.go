package seed

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapi/catalog/internal/domain"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(50, 42)
	b := Generate(50, 42)

	assert.Equal(t, a, b)
	assert.Len(t, a.Products, 50)
	assert.Equal(t, ID("product", 0), a.Products[0].ID)
	assert.NotEqual(t, a, Generate(50, 7))
}

func TestGenerate_RelationsPointAtProducts(t *testing.T) {
	ds := Generate(100, 1)

	known := make(map[string]bool, len(ds.Products))
	for _, id := range ds.ProductIDs() {
		known[id] = true
	}
	for _, c := range ds.Comments {
		assert.True(t, known[c.ProductID], c.ID)
	}

	mains := make(map[string]int)
	for _, img := range ds.Images {
		assert.True(t, known[img.ProductID], img.ID)
		if img.Main {
			mains[img.ProductID]++
		}
	}
	for pid, n := range mains {
		assert.Equal(t, 1, n, pid)
	}
	assert.Nil(t, ds.Products[9].Price)
}

func TestBuildInsert(t *testing.T) {
	rows := []domain.Image{{ID: "i-1", URL: "u1", ProductID: "p-1", Main: true}, {ID: "i-2", URL: "u2", ProductID: "p-1"}}

	query, args := buildInsert("images (image_id, url, product_id, main)", rows,
		func(img domain.Image) []any { return []any{img.ID, img.URL, img.ProductID, mainFlag(img.Main)} })

	assert.Equal(t, "INSERT INTO images (image_id, url, product_id, main) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)", query)
	assert.Equal(t, []any{"i-1", "u1", "p-1", int16(1), "i-2", "u2", "p-1", int16(0)}, args)
}

func TestLoad_CleansThenInserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	title, price := "Lamp", 9.5
	ds := &Dataset{
		Products: []domain.Product{{ID: "p-1", Title: &title, Price: &price}},
		Images:   []domain.Image{{ID: "i-1", URL: "u", ProductID: "p-1", Main: true}},
	}

	ids := []string{"p-1"}
	mock.ExpectExec("DELETE FROM images").WithArgs(ids).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM comments").WithArgs(ids).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM products").WithArgs(ids).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO products").
		WithArgs("p-1", &title, (*string)(nil), &price).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO images").
		WithArgs("i-1", "u", "p-1", int16(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, Load(context.Background(), mock, ds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_StopsOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM images").WillReturnError(errors.New("connection refused"))

	err = Load(context.Background(), mock, Generate(3, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clean previous seed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
