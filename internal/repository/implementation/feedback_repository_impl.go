package implementation

import (
	"context"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/mapper"
	"gym-retention-be/internal/model"
	"gym-retention-be/internal/repository/contract"
	"gym-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.FeedbackToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByMemberID{MemberID: memberId},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Limit{Limit: limit},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Feedback, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.FeedbackToEntity(m))
	}
	return entities, nil
}
