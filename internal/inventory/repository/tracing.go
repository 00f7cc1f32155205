package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingProductRepository wraps GormProductRepository with tracing
type TracingProductRepository struct {
	*GormProductRepository
}

// NewTracingProductRepository creates a product repository with tracing
func NewTracingProductRepository(db *gorm.DB) *TracingProductRepository {
	return &TracingProductRepository{
		GormProductRepository: NewGormProductRepository(db),
	}
}

func (r *TracingProductRepository) Create(product *domain.Product) error {
	_, span := tracer.Start(context.Background(), "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.brand", product.Brand),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.price", product.Price),
			attribute.Int("product.quantity", product.Quantity),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

func (r *TracingProductRepository) FindByID(id uint) (*domain.Product, error) {
	_, span := tracer.Start(context.Background(), "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Int("product.quantity", product.Quantity),
	)
	return product, nil
}

func (r *TracingProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	_, span := tracer.Start(context.Background(), "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, err := r.GormProductRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracingProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	_, span := tracer.Start(context.Background(), "repository.FindByCategory",
		trace.WithAttributes(
			attribute.String("query.category", category),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, err := r.GormProductRepository.FindByCategory(category, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracingProductRepository) Update(product *domain.Product) error {
	_, span := tracer.Start(context.Background(), "repository.Update",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.String("product.name", product.Name),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Update(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingProductRepository) Delete(id uint) error {
	_, span := tracer.Start(context.Background(), "repository.Delete",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingProductRepository) DecrementStock(id uint, quantity int) (*domain.Product, error) {
	_, span := tracer.Start(context.Background(), "repository.DecrementStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("stock.decrement", quantity),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.DecrementStock(id, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.remaining", product.Quantity))
	return product, nil
}
