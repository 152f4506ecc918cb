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

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	m := r.mapper.ToModel(notification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*notification = *r.mapper.ToEntity(m)
	return nil
}

func (r *NotificationRepositoryImpl) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Notification, error) {
	var models []*model.Notification
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByMemberID{MemberID: memberId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: limit},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
