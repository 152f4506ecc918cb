package service

import (
	"context"
	"time"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/logger"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/churn"
	"gym-retention-be/pkg/events"
	pktNats "gym-retention-be/pkg/nats"

	"github.com/google/uuid"
)

type IEvaluationService interface {
	Evaluate(ctx context.Context, daysAgo int) (*dto.EvaluationResponse, error)
	GetLatest(ctx context.Context) (*dto.EvaluationResponse, error)
}

type evaluationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewEvaluationService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IEvaluationService {
	return &evaluationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Evaluate replays predictions older than the lookback window against what
// actually happened to each member. A member that no longer exists or sits
// at "Inativo" counts as churned.
func (s *evaluationService) Evaluate(ctx context.Context, daysAgo int) (*dto.EvaluationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cutoff := time.Now().AddDate(0, 0, -daysAgo)
	predictions, err := uow.ChurnPredictionRepository().FindOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	var matrix churn.ConfusionMatrix
	for _, prediction := range predictions {
		member, err := uow.MemberRepository().GetByID(ctx, prediction.MemberId)
		if err != nil {
			return nil, err
		}
		actuallyChurned := member == nil || member.Status == entity.MemberStatusInactive
		matrix.Add(churn.PredictedChurn(prediction.ChurnProbability), actuallyChurned)
	}

	accuracy, precision, recall, f1 := matrix.Metrics()

	metrics := entity.ModelMetrics{
		Id:                uuid.New(),
		Accuracy:          accuracy,
		Precision:         precision,
		Recall:            recall,
		F1Score:           f1,
		TotalPredictions:  matrix.Total(),
		FeatureImportance: churn.FeatureImportance(),
		CreatedAt:         time.Now(),
	}

	if err := uow.ModelMetricsRepository().Create(ctx, &metrics); err != nil {
		return nil, err
	}

	s.logger.Info("EvaluationService", "Model evaluated", map[string]interface{}{
		"total_predictions": metrics.TotalPredictions,
		"accuracy":          accuracy,
		"f1_score":          f1,
	})

	if s.eventPublisher != nil {
		evt := events.NewModelEvaluated(metrics.Id, accuracy, f1, metrics.TotalPredictions)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("EvaluationService", "Failed to publish evaluation event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return metricsToResponse(&metrics), nil
}

func (s *evaluationService) GetLatest(ctx context.Context) (*dto.EvaluationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	metrics, err := uow.ModelMetricsRepository().FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, nil
	}

	return metricsToResponse(metrics), nil
}

func metricsToResponse(m *entity.ModelMetrics) *dto.EvaluationResponse {
	return &dto.EvaluationResponse{
		Id:                m.Id,
		Accuracy:          m.Accuracy,
		Precision:         m.Precision,
		Recall:            m.Recall,
		F1Score:           m.F1Score,
		TotalPredictions:  m.TotalPredictions,
		FeatureImportance: m.FeatureImportance,
		CreatedAt:         m.CreatedAt,
	}
}
