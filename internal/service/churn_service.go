package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/pkg/logger"
	"gym-retention-be/internal/repository/memory"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/churn"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const dashboardSummaryCacheKey = "churn:dashboard:summary"

type IChurnService interface {
	PredictMember(ctx context.Context, memberId uuid.UUID) (*dto.PredictionResponse, error)
	RunBatch(ctx context.Context) (*dto.BatchPredictionResponse, error)
	GetLatestPrediction(ctx context.Context, memberId uuid.UUID) (*dto.PredictionResponse, error)
	GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type churnService struct {
	uowFactory       unitofwork.RepositoryFactory
	scorer           *churn.Scorer
	publisherService IPublisherService
	predictionCache  *memory.PredictionCache
	rdb              *redis.Client
	batchWorkers     int
	summaryCacheTTL  time.Duration
	logger           logger.ILogger
}

func NewChurnService(
	uowFactory unitofwork.RepositoryFactory,
	scorer *churn.Scorer,
	publisherService IPublisherService,
	predictionCache *memory.PredictionCache,
	rdb *redis.Client,
	batchWorkers int,
	summaryCacheTTL time.Duration,
	log logger.ILogger,
) IChurnService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &churnService{
		uowFactory:       uowFactory,
		scorer:           scorer,
		publisherService: publisherService,
		predictionCache:  predictionCache,
		rdb:              rdb,
		batchWorkers:     batchWorkers,
		summaryCacheTTL:  summaryCacheTTL,
		logger:           log,
	}
}

func (s *churnService) PredictMember(ctx context.Context, memberId uuid.UUID) (*dto.PredictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, memberId)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFound("member", memberId.String())
	}

	attendances, err := uow.AttendanceRepository().FindRecentByMember(ctx, memberId, churn.AttendanceWindow)
	if err != nil {
		return nil, err
	}
	payments, err := uow.PaymentRepository().FindRecentByMember(ctx, memberId, churn.PaymentWindow)
	if err != nil {
		return nil, err
	}
	feedbacks, err := uow.FeedbackRepository().FindRecentByMember(ctx, memberId, churn.FeedbackWindow)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	features := churn.ExtractFeatures(now, member, attendances, payments, feedbacks)
	score := s.scorer.Calculate(features)
	riskLevel := churn.ClassifyRisk(score.Probability)

	prediction := entity.ChurnPrediction{
		Id:               uuid.New(),
		MemberId:         memberId,
		ChurnProbability: score.Probability,
		ConfidenceScore:  score.Confidence,
		RiskLevel:        riskLevel,
		Factors:          score.Factors,
		PredictionDate:   now,
	}

	if err := uow.ChurnPredictionRepository().Create(ctx, &prediction); err != nil {
		return nil, err
	}

	s.predictionCache.Save(&prediction)

	msgJson, err := json.Marshal(dto.PredictionCreatedMessage{PredictionId: prediction.Id})
	if err != nil {
		return nil, err
	}
	// Alerting is auxiliary; a publish failure must not fail the prediction.
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("ChurnService", "Failed to publish prediction message", map[string]interface{}{
			"prediction_id": prediction.Id,
			"error":         err.Error(),
		})
	}

	s.logger.Info("ChurnService", "Prediction stored", map[string]interface{}{
		"member_id":   memberId,
		"probability": score.Probability,
		"risk_level":  riskLevel,
	})

	return predictionToResponse(&prediction), nil
}

// RunBatch scores every active member with a bounded worker pool. A failed
// member is logged and skipped; the batch itself never fails because of one.
func (s *churnService) RunBatch(ctx context.Context) (*dto.BatchPredictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.MemberRepository().FindAllByStatus(ctx, entity.MemberStatusActive)
	if err != nil {
		return nil, err
	}

	var processed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for _, member := range members {
		memberId := member.Id
		g.Go(func() error {
			if _, err := s.PredictMember(gctx, memberId); err != nil {
				s.logger.Warn("ChurnService", "Batch member skipped", map[string]interface{}{
					"member_id": memberId,
					"error":     err.Error(),
				})
				return nil
			}
			atomic.AddInt64(&processed, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("ChurnService", "Batch completed", map[string]interface{}{
		"processed": processed,
		"total":     len(members),
	})

	return &dto.BatchPredictionResponse{
		Processed: int(processed),
		Total:     len(members),
	}, nil
}

func (s *churnService) GetLatestPrediction(ctx context.Context, memberId uuid.UUID) (*dto.PredictionResponse, error) {
	if cached, ok := s.predictionCache.Get(memberId); ok {
		return predictionToResponse(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	prediction, err := uow.ChurnPredictionRepository().FindLatestByMember(ctx, memberId)
	if err != nil {
		return nil, err
	}
	if prediction == nil {
		return nil, apperror.NewNotFound("prediction", memberId.String())
	}

	s.predictionCache.Save(prediction)
	return predictionToResponse(prediction), nil
}

func (s *churnService) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardSummaryCacheKey).Bytes(); err == nil {
			var summary dto.DashboardSummaryResponse
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	active, err := uow.MemberRepository().CountByStatus(ctx, entity.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	inactive, err := uow.MemberRepository().CountByStatus(ctx, entity.MemberStatusInactive)
	if err != nil {
		return nil, err
	}
	breakdown, err := uow.ChurnPredictionRepository().CountByRiskLevel(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		TotalMembers:    active + inactive,
		ActiveMembers:   active,
		InactiveMembers: inactive,
		RiskBreakdown:   breakdown,
		GeneratedAt:     time.Now(),
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(summary); err == nil {
			s.rdb.Set(ctx, dashboardSummaryCacheKey, payload, s.summaryCacheTTL)
		}
	}

	return summary, nil
}

func predictionToResponse(p *entity.ChurnPrediction) *dto.PredictionResponse {
	return &dto.PredictionResponse{
		Id:               p.Id,
		MemberId:         p.MemberId,
		ChurnProbability: p.ChurnProbability,
		ConfidenceScore:  p.ConfidenceScore,
		RiskLevel:        p.RiskLevel,
		Factors:          p.Factors,
		PredictionDate:   p.PredictionDate,
	}
}
