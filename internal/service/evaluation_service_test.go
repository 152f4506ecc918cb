package service

import (
	"context"
	"testing"
	"time"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluationService(uow *fakeUnitOfWork) IEvaluationService {
	return NewEvaluationService(&fakeFactory{uow: uow}, nil, noopLogger{})
}

func oldPrediction(memberId uuid.UUID, probability float64) *entity.ChurnPrediction {
	return &entity.ChurnPrediction{
		Id:               uuid.New(),
		MemberId:         memberId,
		ChurnProbability: probability,
		RiskLevel:        entity.RiskLevelMedium,
		PredictionDate:   time.Now().AddDate(0, 0, -60),
	}
}

func TestEvaluateEmptyWindow(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestEvaluationService(uow)

	res, err := svc.Evaluate(context.Background(), 30)

	require.NoError(t, err)
	assert.Zero(t, res.Accuracy)
	assert.Zero(t, res.Precision)
	assert.Zero(t, res.Recall)
	assert.Zero(t, res.F1Score)
	assert.Zero(t, res.TotalPredictions)
	assert.NotEmpty(t, res.FeatureImportance)

	// The snapshot persists even when there was nothing to evaluate.
	stored, err := uow.metrics.FindLatest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestEvaluateClassification(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestEvaluationService(uow)
	ctx := context.Background()

	churned := activeMember("ana")
	churned.Status = entity.MemberStatusInactive
	retained := activeMember("bruno")
	stillActive := activeMember("carla")
	for _, m := range []*entity.Member{churned, retained, stillActive} {
		require.NoError(t, uow.members.Create(ctx, m))
	}
	deletedId := uuid.New()

	// TP: high probability, member went inactive.
	require.NoError(t, uow.predictions.Create(ctx, oldPrediction(churned.Id, 0.8)))
	// FP: high probability, member stayed active.
	require.NoError(t, uow.predictions.Create(ctx, oldPrediction(retained.Id, 0.8)))
	// TN: low probability, member stayed active.
	require.NoError(t, uow.predictions.Create(ctx, oldPrediction(stillActive.Id, 0.2)))
	// FN: low probability, member row no longer exists.
	require.NoError(t, uow.predictions.Create(ctx, oldPrediction(deletedId, 0.2)))

	res, err := svc.Evaluate(ctx, 30)

	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalPredictions)
	assert.InDelta(t, 0.5, res.Accuracy, 1e-9)
	assert.InDelta(t, 0.5, res.Precision, 1e-9)
	assert.InDelta(t, 0.5, res.Recall, 1e-9)
	assert.InDelta(t, 0.5, res.F1Score, 1e-9)
}

func TestEvaluateNoPositivePredictions(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestEvaluationService(uow)
	ctx := context.Background()

	churned := activeMember("ana")
	churned.Status = entity.MemberStatusInactive
	require.NoError(t, uow.members.Create(ctx, churned))
	require.NoError(t, uow.predictions.Create(ctx, oldPrediction(churned.Id, 0.2)))

	res, err := svc.Evaluate(ctx, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPredictions)
	assert.Zero(t, res.Accuracy)
	assert.Zero(t, res.Precision)
	assert.Zero(t, res.Recall)
	assert.Zero(t, res.F1Score)
}

func TestEvaluateIgnoresRecentPredictions(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestEvaluationService(uow)
	ctx := context.Background()

	member := activeMember("ana")
	require.NoError(t, uow.members.Create(ctx, member))

	recent := oldPrediction(member.Id, 0.8)
	recent.PredictionDate = time.Now().AddDate(0, 0, -5)
	require.NoError(t, uow.predictions.Create(ctx, recent))

	res, err := svc.Evaluate(ctx, 30)

	require.NoError(t, err)
	assert.Zero(t, res.TotalPredictions)
}

func TestGetLatestReturnsNilWithoutSnapshots(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestEvaluationService(uow)

	res, err := svc.GetLatest(context.Background())

	require.NoError(t, err)
	assert.Nil(t, res)
}
