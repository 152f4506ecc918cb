package implementation

import (
	"context"
	"errors"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/mapper"
	"gym-retention-be/internal/model"
	"gym-retention-be/internal/repository/contract"
	"gym-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewMemberRepository(db *gorm.DB) contract.MemberRepository {
	return &MemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *entity.Member) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var m model.Member
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *MemberRepositoryImpl) FindAllByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error) {
	var models []*model.Member
	query := applySpecifications(r.db.WithContext(ctx),
		specification.Filter("status", string(status)),
		specification.OrderBy{Field: "created_at", Desc: false},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *MemberRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]*entity.Member, error) {
	var models []*model.Member
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MemberRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MemberStatus) error {
	return r.db.WithContext(ctx).Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *MemberRepositoryImpl) CountByStatus(ctx context.Context, status entity.MemberStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Member{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}
