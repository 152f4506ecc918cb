package contract

import (
	"context"
	"time"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type ChurnPredictionRepository interface {
	// Create inserts a new prediction row. Predictions are insert-only;
	// there is no update path.
	Create(ctx context.Context, prediction *entity.ChurnPrediction) error
	// GetByID returns (nil, nil) when the prediction does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChurnPrediction, error)
	FindLatestByMember(ctx context.Context, memberId uuid.UUID) (*entity.ChurnPrediction, error)
	// FindOlderThan selects predictions whose prediction_date is before cutoff.
	FindOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.ChurnPrediction, error)
	CountByRiskLevel(ctx context.Context) (map[entity.RiskLevel]int64, error)
}

type ModelMetricsRepository interface {
	Create(ctx context.Context, metrics *entity.ModelMetrics) error
	FindLatest(ctx context.Context) (*entity.ModelMetrics, error)
}
