package http

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/event"
	"github.com/shopapi/catalog/internal/repository"
	"github.com/shopapi/catalog/internal/service"
	apperrors "github.com/shopapi/catalog/pkg/errors"
)

// =============================================================================
// In-memory store backing the three repositories
// =============================================================================

type memStore struct {
	products []domain.Product
	comments []domain.Comment
	images   []domain.Image

	// writes counts every mutating call, successful or not.
	writes int
	// err, when set, is returned by every call.
	err error
}

type memProductRepo struct{ s *memStore }
type memCommentRepo struct{ s *memStore }
type memImageRepo struct{ s *memStore }

func (r memProductRepo) List(context.Context) ([]domain.Product, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	return slices.Clone(r.s.products), nil
}

func (r memProductRepo) Search(_ context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []domain.Product{}
	for _, p := range r.s.products {
		if f.Title != nil && !containsFold(p.Title, *f.Title) {
			continue
		}
		if f.Description != nil && !containsFold(p.Description, *f.Description) {
			continue
		}
		if f.PriceFrom != nil && (p.Price == nil || *p.Price < *f.PriceFrom) {
			continue
		}
		if f.PriceTo != nil && (p.Price == nil || *p.Price > *f.PriceTo) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r memProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	for _, p := range r.s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r memProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.s.writes++
	if r.s.err != nil {
		return r.s.err
	}
	r.s.products = append(r.s.products, *p)
	return nil
}

func (r memProductRepo) Delete(_ context.Context, id string) error {
	r.s.writes++
	if r.s.err != nil {
		return r.s.err
	}
	r.s.products = slices.DeleteFunc(r.s.products, func(p domain.Product) bool { return p.ID == id })
	return nil
}

func (r memCommentRepo) List(context.Context) ([]domain.Comment, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	return slices.Clone(r.s.comments), nil
}

func (r memCommentRepo) ListByProduct(_ context.Context, productID string) ([]domain.Comment, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []domain.Comment{}
	for _, c := range r.s.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCommentRepo) DeleteByProduct(_ context.Context, productID string) error {
	r.s.writes++
	if r.s.err != nil {
		return r.s.err
	}
	r.s.comments = slices.DeleteFunc(r.s.comments, func(c domain.Comment) bool { return c.ProductID == productID })
	return nil
}

func (r memImageRepo) List(context.Context) ([]domain.Image, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	return slices.Clone(r.s.images), nil
}

func (r memImageRepo) ListByProduct(_ context.Context, productID string) ([]domain.Image, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []domain.Image{}
	for _, img := range r.s.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r memImageRepo) CreateBatch(_ context.Context, _ string, images []domain.Image) error {
	r.s.writes++
	if r.s.err != nil {
		return r.s.err
	}
	r.s.images = append(r.s.images, images...)
	return nil
}

func (r memImageRepo) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	r.s.writes++
	if r.s.err != nil {
		return 0, r.s.err
	}
	before := len(r.s.images)
	r.s.images = slices.DeleteFunc(r.s.images, func(img domain.Image) bool { return slices.Contains(ids, img.ID) })
	return int64(before - len(r.s.images)), nil
}

func (r memImageRepo) DeleteByProduct(_ context.Context, productID string) error {
	r.s.writes++
	if r.s.err != nil {
		return r.s.err
	}
	r.s.images = slices.DeleteFunc(r.s.images, func(img domain.Image) bool { return img.ProductID == productID })
	return nil
}

func containsFold(field *string, sub string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(sub))
}

// =============================================================================
// Test helpers
// =============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(s *memStore) *service.ProductService {
	logger := testLogger()
	return service.NewProductService(
		memProductRepo{s}, memCommentRepo{s}, memImageRepo{s},
		event.NewProducer(event.Discard, logger),
		logger,
	)
}
