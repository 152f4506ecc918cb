package implementation

import (
	"context"
	"errors"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/mapper"
	"gym-retention-be/internal/model"
	"gym-retention-be/internal/repository/contract"

	"gorm.io/gorm"
)

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StaffMapper
}

func NewStaffRepository(db *gorm.DB) contract.StaffRepository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mapper.NewStaffMapper(),
	}
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, staff *entity.StaffUser) error {
	m := r.mapper.ToModel(staff)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*staff = *r.mapper.ToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	var m model.StaffUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
