package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/repository/memory"
	"gym-retention-be/pkg/churn"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChurnService(uow *fakeUnitOfWork, pub *fakePublisher) IChurnService {
	return NewChurnService(
		&fakeFactory{uow: uow},
		churn.NewScorer(rand.New(rand.NewSource(42))),
		pub,
		memory.NewPredictionCache(),
		nil,
		4,
		time.Minute,
		noopLogger{},
	)
}

func activeMember(name string) *entity.Member {
	return &entity.Member{
		Id:        uuid.New(),
		FullName:  name,
		Email:     name + "@example.com",
		Status:    entity.MemberStatusActive,
		CreatedAt: time.Now().AddDate(0, -6, 0),
	}
}

func TestPredictMemberNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	_, err := svc.PredictMember(context.Background(), uuid.New())

	require.Error(t, err)
	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "member", notFound.Resource)
}

func TestPredictMemberStoresPrediction(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &fakePublisher{}
	svc := newTestChurnService(uow, pub)

	member := activeMember("carla")
	require.NoError(t, uow.members.Create(context.Background(), member))
	for i := 0; i < 10; i++ {
		uow.attendances.Create(context.Background(), &entity.Attendance{
			Id:       uuid.New(),
			MemberId: member.Id,
			Date:     time.Now().AddDate(0, 0, -i*2),
		})
	}

	res, err := svc.PredictMember(context.Background(), member.Id)

	require.NoError(t, err)
	assert.Equal(t, member.Id, res.MemberId)
	assert.Greater(t, res.ChurnProbability, 0.0)
	assert.Less(t, res.ChurnProbability, 1.0)
	assert.GreaterOrEqual(t, res.ConfidenceScore, 0.7)
	assert.Less(t, res.ConfidenceScore, 0.9)
	assert.Equal(t, 1, uow.predictions.count())
	assert.Equal(t, 1, pub.count())

	// The fresh prediction must be servable without a second repo read.
	latest, err := svc.GetLatestPrediction(context.Background(), member.Id)
	require.NoError(t, err)
	assert.Equal(t, res.Id, latest.Id)
}

func TestRunBatchIsolatesFailures(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	good1 := activeMember("ana")
	good2 := activeMember("bruno")
	bad := activeMember("davi")
	for _, m := range []*entity.Member{good1, good2, bad} {
		require.NoError(t, uow.members.Create(context.Background(), m))
	}
	uow.members.failGet[bad.Id] = true

	res, err := svc.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 2, uow.predictions.count())
}

func TestRunBatchSkipsInactiveMembers(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	active := activeMember("ana")
	inactive := activeMember("zoe")
	inactive.Status = entity.MemberStatusInactive
	require.NoError(t, uow.members.Create(context.Background(), active))
	require.NoError(t, uow.members.Create(context.Background(), inactive))

	res, err := svc.RunBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Processed)
}

func TestGetLatestPredictionNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	_, err := svc.GetLatestPrediction(context.Background(), uuid.New())

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetLatestPredictionFallsBackToRepository(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	memberId := uuid.New()
	older := &entity.ChurnPrediction{
		Id:             uuid.New(),
		MemberId:       memberId,
		RiskLevel:      entity.RiskLevelLow,
		PredictionDate: time.Now().AddDate(0, 0, -10),
	}
	newer := &entity.ChurnPrediction{
		Id:             uuid.New(),
		MemberId:       memberId,
		RiskLevel:      entity.RiskLevelMedium,
		PredictionDate: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, uow.predictions.Create(context.Background(), older))
	require.NoError(t, uow.predictions.Create(context.Background(), newer))

	res, err := svc.GetLatestPrediction(context.Background(), memberId)

	require.NoError(t, err)
	assert.Equal(t, newer.Id, res.Id)
}

func TestGetDashboardSummaryCounts(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChurnService(uow, &fakePublisher{})

	active := activeMember("ana")
	inactive := activeMember("zoe")
	inactive.Status = entity.MemberStatusInactive
	require.NoError(t, uow.members.Create(context.Background(), active))
	require.NoError(t, uow.members.Create(context.Background(), inactive))
	require.NoError(t, uow.predictions.Create(context.Background(), &entity.ChurnPrediction{
		Id:             uuid.New(),
		MemberId:       active.Id,
		RiskLevel:      entity.RiskLevelHigh,
		PredictionDate: time.Now(),
	}))

	summary, err := svc.GetDashboardSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalMembers)
	assert.Equal(t, 1, summary.ActiveMembers)
	assert.Equal(t, 1, summary.InactiveMembers)
	assert.Equal(t, int64(1), summary.RiskBreakdown[entity.RiskLevelHigh])
}
