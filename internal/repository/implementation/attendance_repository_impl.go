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

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewAttendanceRepository(db *gorm.DB) contract.AttendanceRepository {
	return &AttendanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, attendance *entity.Attendance) error {
	m := r.mapper.AttendanceToModel(attendance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*attendance = *r.mapper.AttendanceToEntity(m)
	return nil
}

func (r *AttendanceRepositoryImpl) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Attendance, error) {
	var models []*model.Attendance
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByMemberID{MemberID: memberId},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Limit{Limit: limit},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Attendance, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.AttendanceToEntity(m))
	}
	return entities, nil
}
