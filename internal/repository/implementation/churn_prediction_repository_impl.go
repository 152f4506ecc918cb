package implementation

import (
	"context"
	"errors"
	"time"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/mapper"
	"gym-retention-be/internal/model"
	"gym-retention-be/internal/repository/contract"
	"gym-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChurnPredictionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChurnMapper
}

func NewChurnPredictionRepository(db *gorm.DB) contract.ChurnPredictionRepository {
	return &ChurnPredictionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChurnMapper(),
	}
}

func (r *ChurnPredictionRepositoryImpl) Create(ctx context.Context, prediction *entity.ChurnPrediction) error {
	m := r.mapper.PredictionToModel(prediction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prediction = *r.mapper.PredictionToEntity(m)
	return nil
}

func (r *ChurnPredictionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChurnPrediction, error) {
	var m model.ChurnPrediction
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.PredictionToEntity(&m), nil
}

func (r *ChurnPredictionRepositoryImpl) FindLatestByMember(ctx context.Context, memberId uuid.UUID) (*entity.ChurnPrediction, error) {
	var m model.ChurnPrediction
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByMemberID{MemberID: memberId},
		specification.OrderBy{Field: "prediction_date", Desc: true},
	)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.PredictionToEntity(&m), nil
}

func (r *ChurnPredictionRepositoryImpl) FindOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.ChurnPrediction, error) {
	var models []*model.ChurnPrediction
	query := applySpecifications(r.db.WithContext(ctx),
		specification.OlderThan{Field: "prediction_date", Cutoff: cutoff},
		specification.OrderBy{Field: "prediction_date", Desc: false},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.PredictionsToEntities(models), nil
}

func (r *ChurnPredictionRepositoryImpl) CountByRiskLevel(ctx context.Context) (map[entity.RiskLevel]int64, error) {
	var rows []struct {
		RiskLevel string
		Count     int64
	}

	err := r.db.WithContext(ctx).Model(&model.ChurnPrediction{}).
		Select("risk_level, COUNT(*) as count").
		Group("risk_level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.RiskLevel]int64, len(rows))
	for _, row := range rows {
		counts[entity.RiskLevel(row.RiskLevel)] = row.Count
	}
	return counts, nil
}

type ModelMetricsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChurnMapper
}

func NewModelMetricsRepository(db *gorm.DB) contract.ModelMetricsRepository {
	return &ModelMetricsRepositoryImpl{
		db:     db,
		mapper: mapper.NewChurnMapper(),
	}
}

func (r *ModelMetricsRepositoryImpl) Create(ctx context.Context, metrics *entity.ModelMetrics) error {
	m := r.mapper.MetricsToModel(metrics)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metrics = *r.mapper.MetricsToEntity(m)
	return nil
}

func (r *ModelMetricsRepositoryImpl) FindLatest(ctx context.Context) (*entity.ModelMetrics, error) {
	var m model.ModelMetrics
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MetricsToEntity(&m), nil
}
