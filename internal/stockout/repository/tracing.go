package repository

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

var tracer = otel.Tracer("stockout-repository")

// TracingHistoryRepository wraps PostgresHistoryRepository with tracing
type TracingHistoryRepository struct {
	*PostgresHistoryRepository
}

// NewTracingHistoryRepository creates a history repository with tracing
func NewTracingHistoryRepository(db *sql.DB) *TracingHistoryRepository {
	return &TracingHistoryRepository{
		PostgresHistoryRepository: NewPostgresHistoryRepository(db),
	}
}

func (r *TracingHistoryRepository) Create(lines []domain.LineRequest) (*domain.StockOutHistory, error) {
	_, span := tracer.Start(context.Background(), "repository.Create",
		trace.WithAttributes(
			attribute.Int("stockout.lines", len(lines)),
		),
	)
	defer span.End()

	history, err := r.PostgresHistoryRepository.Create(lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("stockout.history_id", int(history.ID)),
		attribute.Float64("stockout.total_cost", history.TotalCost),
	)
	return history, nil
}

func (r *TracingHistoryRepository) FindAll() ([]domain.StockOutHistory, error) {
	_, span := tracer.Start(context.Background(), "repository.FindAll")
	defer span.End()

	histories, err := r.PostgresHistoryRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(histories)))
	return histories, nil
}

func (r *TracingHistoryRepository) FindByDateRange(start, end time.Time) ([]domain.StockOutHistory, error) {
	_, span := tracer.Start(context.Background(), "repository.FindByDateRange",
		trace.WithAttributes(
			attribute.String("query.start", start.Format(time.RFC3339)),
			attribute.String("query.end", end.Format(time.RFC3339)),
		),
	)
	defer span.End()

	histories, err := r.PostgresHistoryRepository.FindByDateRange(start, end)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(histories)))
	return histories, nil
}
