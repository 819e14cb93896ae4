package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
	apperrors "github.com/shopapi/catalog/pkg/errors"
	"github.com/shopapi/catalog/pkg/validator"
)

// Caller-facing messages.
const (
	MsgImagesEmpty     = "Images array is empty"
	MsgNoImagesRemoved = "No one image has been removed"
)

// EventPublisher emits catalog domain events. *event.Producer implements it.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, product *domain.Product, imageIDs []string) error
	PublishProductDeleted(ctx context.Context, productID string) error
	PublishImagesAdded(ctx context.Context, productID string, imageIDs []string) error
	PublishImagesRemoved(ctx context.Context, imageIDs []string, removed int64) error
}

// ProductService implements the catalog use cases on top of the repositories.
// Multi-statement writes are not transactional.
type ProductService struct {
	products repository.ProductRepository
	comments repository.CommentRepository
	images   repository.ImageRepository
	events   EventPublisher
	logger   *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	products repository.ProductRepository,
	comments repository.CommentRepository,
	images repository.ImageRepository,
	events EventPublisher,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		products: products,
		comments: comments,
		images:   images,
		events:   events,
		logger:   logger,
	}
}

// CreateProductInput holds the parameters for creating a product. Zero
// values of Title, Description and Price are stored as NULL.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Images      []domain.NewImage
}

// ListProducts returns every product with its comments, images and thumbnail.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := s.attachAll(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts returns the products matching filter. When nothing matches
// the comment and image tables are not read.
func (s *ProductService) SearchProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if len(products) == 0 {
		return []domain.Product{}, nil
	}
	if err := s.attachAll(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) attachAll(ctx context.Context, products []domain.Product) error {
	comments, err := s.comments.List(ctx)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	images, err := s.images.List(ctx)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	AttachComments(products, comments)
	AttachImages(products, images)
	return nil
}

// GetProduct returns one product with its comments, images and thumbnail.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list product comments: %w", err)
	}
	images, err := s.images.ListByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}

	one := []domain.Product{*product}
	AttachComments(one, comments)
	AttachImages(one, images)
	return &one[0], nil
}

func (s *ProductService) getProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Product", id)
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// CreateProduct stores a new product and any images supplied with it, and
// returns the generated product ID.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (string, error) {
	product := &domain.Product{
		ID:          uuid.New().String(),
		Title:       nullIfZero(input.Title),
		Description: nullIfZero(input.Description),
		Price:       nullIfZero(input.Price),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	images := newImages(product.ID, input.Images)
	if len(images) > 0 {
		if err := s.images.CreateBatch(ctx, product.ID, images); err != nil {
			return "", fmt.Errorf("create product images: %w", err)
		}
	}

	imageIDs := ids(images)
	if err := s.events.PublishProductCreated(ctx, product, imageIDs); err != nil {
		s.logPublishFailure(ctx, "catalog.product.created", product.ID, err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.Int("images", len(images)),
	)
	return product.ID, nil
}

// AddImages stores images for productID. The product is not required to
// exist.
func (s *ProductService) AddImages(ctx context.Context, productID string, input []domain.NewImage) error {
	if err := requireImages(input); err != nil {
		return err
	}

	images := newImages(productID, input)
	if err := s.images.CreateBatch(ctx, productID, images); err != nil {
		return fmt.Errorf("add images: %w", err)
	}

	if err := s.events.PublishImagesAdded(ctx, productID, ids(images)); err != nil {
		s.logPublishFailure(ctx, "catalog.images.added", productID, err)
	}

	s.logger.InfoContext(ctx, "images added",
		slog.String("product_id", productID),
		slog.Int("images", len(images)),
	)
	return nil
}

// RemoveImages deletes the images with the given IDs. It fails with a
// not-found error when none of them existed.
func (s *ProductService) RemoveImages(ctx context.Context, imageIDs []string) error {
	if err := requireImages(imageIDs); err != nil {
		return err
	}

	removed, err := s.images.DeleteByIDs(ctx, imageIDs)
	if err != nil {
		return fmt.Errorf("remove images: %w", err)
	}
	if removed == 0 {
		return apperrors.NotFoundMessage(MsgNoImagesRemoved)
	}

	if err := s.events.PublishImagesRemoved(ctx, imageIDs, removed); err != nil {
		s.logPublishFailure(ctx, "catalog.images.removed", imageIDs[0], err)
	}

	s.logger.InfoContext(ctx, "images removed",
		slog.Int("requested", len(imageIDs)),
		slog.Int64("removed", removed),
	)
	return nil
}

// DeleteProduct removes a product after its images and comments, in that
// order. A product that does not exist causes no writes.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.getProduct(ctx, id); err != nil {
		return err
	}

	if err := s.images.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	if err := s.comments.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product comments: %w", err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.events.PublishProductDeleted(ctx, id); err != nil {
		s.logPublishFailure(ctx, "catalog.product.deleted", id, err)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}

// requireImages rejects a nil or empty image list.
func requireImages(list any) error {
	if err := validator.Var(list, "required,min=1"); err != nil {
		return apperrors.InvalidInputCause(MsgImagesEmpty, err)
	}
	return nil
}

// Publishing is best effort: a failed event never fails the request.
func (s *ProductService) logPublishFailure(ctx context.Context, topic, aggregateID string, err error) {
	s.logger.ErrorContext(ctx, "failed to publish event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
		slog.String("error", err.Error()),
	)
}

func newImages(productID string, input []domain.NewImage) []domain.Image {
	images := make([]domain.Image, len(input))
	for i, in := range input {
		images[i] = domain.Image{
			ID:        uuid.New().String(),
			URL:       in.URL,
			ProductID: productID,
			Main:      in.Main,
		}
	}
	return images
}

func ids(images []domain.Image) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.ID
	}
	return out
}

func nullIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
