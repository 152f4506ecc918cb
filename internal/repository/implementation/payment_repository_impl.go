package implementation

import (
	"context"
	"time"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/mapper"
	"gym-retention-be/internal/model"
	"gym-retention-be/internal/repository/contract"
	"gym-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.PaymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.PaymentToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var m model.Payment
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderId string) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", id).
		Update("gateway_order_id", orderId).Error
}

func (r *PaymentRepositoryImpl) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Payment, error) {
	var models []*model.Payment
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByMemberID{MemberID: memberId},
		specification.OrderBy{Field: "due_date", Desc: true},
		specification.Limit{Limit: limit},
	)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Payment, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.PaymentToEntity(m))
	}
	return entities, nil
}

func (r *PaymentRepositoryImpl) UpdateStatusByOrderID(ctx context.Context, orderId string, status entity.PaymentStatus, paidAt *time.Time) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if paidAt != nil {
		updates["paid_at"] = paidAt
	}
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("gateway_order_id = ?", orderId).
		Updates(updates).Error
}

func (r *PaymentRepositoryImpl) MarkOverdueLate(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("status = ? AND due_date < ?", string(entity.PaymentStatusPending), now).
		Update("status", string(entity.PaymentStatusLate))
	return result.RowsAffected, result.Error
}
