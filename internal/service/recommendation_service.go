package service

import (
	"context"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/churn"

	"github.com/google/uuid"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, memberId, predictionId uuid.UUID) (*dto.RecommendationsResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, memberId, predictionId uuid.UUID) (*dto.RecommendationsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, memberId)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFound("member", memberId.String())
	}

	prediction, err := uow.ChurnPredictionRepository().GetByID(ctx, predictionId)
	if err != nil {
		return nil, err
	}
	if prediction == nil || prediction.MemberId != memberId {
		return nil, apperror.NewNotFound("prediction", predictionId.String())
	}

	recommendations := churn.BuildRecommendations(prediction.RiskLevel, prediction.Factors)

	return &dto.RecommendationsResponse{
		MemberId:        memberId,
		PredictionId:    predictionId,
		RiskLevel:       prediction.RiskLevel,
		Recommendations: recommendations,
	}, nil
}
