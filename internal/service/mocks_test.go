package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
)

// --- Mock Repositories ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Comment, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) DeleteByProduct(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) List(ctx context.Context) ([]domain.Image, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Image), args.Error(1)
}

func (m *mockImageRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Image, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Image), args.Error(1)
}

func (m *mockImageRepository) CreateBatch(ctx context.Context, productID string, images []domain.Image) error {
	return m.Called(ctx, productID, images).Error(0)
}

func (m *mockImageRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockImageRepository) DeleteByProduct(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

// --- Mock Event Publisher ---

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishProductCreated(ctx context.Context, product *domain.Product, imageIDs []string) error {
	return m.Called(ctx, product, imageIDs).Error(0)
}

func (m *mockEventPublisher) PublishProductDeleted(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockEventPublisher) PublishImagesAdded(ctx context.Context, productID string, imageIDs []string) error {
	return m.Called(ctx, productID, imageIDs).Error(0)
}

func (m *mockEventPublisher) PublishImagesRemoved(ctx context.Context, imageIDs []string, removed int64) error {
	return m.Called(ctx, imageIDs, removed).Error(0)
}

// --- Test Helpers ---

type testDeps struct {
	products *mockProductRepository
	comments *mockCommentRepository
	images   *mockImageRepository
	events   *mockEventPublisher
}

func (d *testDeps) assertExpectations(t mock.TestingT) {
	d.products.AssertExpectations(t)
	d.comments.AssertExpectations(t)
	d.images.AssertExpectations(t)
	d.events.AssertExpectations(t)
}

func newTestService() (*ProductService, *testDeps) {
	d := &testDeps{
		products: new(mockProductRepository),
		comments: new(mockCommentRepository),
		images:   new(mockImageRepository),
		events:   new(mockEventPublisher),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProductService(d.products, d.comments, d.images, d.events, logger), d
}
