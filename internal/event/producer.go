package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopapi/catalog/internal/domain"
	pkgkafka "github.com/shopapi/catalog/pkg/kafka"
	"github.com/shopapi/catalog/pkg/logger"
)

// Kafka topics for catalog domain events.
const (
	TopicProductCreated = "catalog.product.created"
	TopicProductDeleted = "catalog.product.deleted"
	TopicImagesAdded    = "catalog.images.added"
	TopicImagesRemoved  = "catalog.images.removed"
)

const (
	AggregateTypeProduct = "product"
	AggregateTypeImage   = "image"
)

// SourceCatalogService identifies events emitted by this service.
const SourceCatalogService = "catalog-service"

// ProductCreatedData is the payload of catalog.product.created.
type ProductCreatedData struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageIDs    []string `json:"image_ids,omitempty"`
}

// ProductDeletedData is the payload of catalog.product.deleted.
type ProductDeletedData struct {
	ID string `json:"id"`
}

// ImagesAddedData is the payload of catalog.images.added.
type ImagesAddedData struct {
	ProductID string   `json:"product_id"`
	ImageIDs  []string `json:"image_ids"`
}

// ImagesRemovedData is the payload of catalog.images.removed. ImageIDs are
// the requested IDs; Removed is how many actually existed.
type ImagesRemovedData struct {
	ImageIDs []string `json:"image_ids"`
	Removed  int64    `json:"removed"`
}

// Publisher sends an envelope to a topic. *pkgkafka.Producer implements it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Discard is a Publisher that drops every event. It is used when Kafka is
// disabled.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, string, *pkgkafka.Event) error { return nil }

// Producer publishes catalog domain events.
type Producer struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewProducer creates a new event producer for the catalog service.
func NewProducer(publisher Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

// PublishProductCreated publishes catalog.product.created.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product, imageIDs []string) error {
	return p.publish(ctx, TopicProductCreated, product.ID, AggregateTypeProduct, ProductCreatedData{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		ImageIDs:    imageIDs,
	})
}

// PublishProductDeleted publishes catalog.product.deleted.
func (p *Producer) PublishProductDeleted(ctx context.Context, productID string) error {
	return p.publish(ctx, TopicProductDeleted, productID, AggregateTypeProduct, ProductDeletedData{ID: productID})
}

// PublishImagesAdded publishes catalog.images.added.
func (p *Producer) PublishImagesAdded(ctx context.Context, productID string, imageIDs []string) error {
	return p.publish(ctx, TopicImagesAdded, productID, AggregateTypeProduct, ImagesAddedData{
		ProductID: productID,
		ImageIDs:  imageIDs,
	})
}

// PublishImagesRemoved publishes catalog.images.removed, keyed by the first
// requested image ID.
func (p *Producer) PublishImagesRemoved(ctx context.Context, imageIDs []string, removed int64) error {
	var key string
	if len(imageIDs) > 0 {
		key = imageIDs[0]
	}
	return p.publish(ctx, TopicImagesRemoved, key, AggregateTypeImage, ImagesRemovedData{
		ImageIDs: imageIDs,
		Removed:  removed,
	})
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceCatalogService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	event.WithCorrelationID(logger.CorrelationIDFromContext(ctx))

	if err := p.publisher.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}
