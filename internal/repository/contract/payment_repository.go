package contract

import (
	"context"
	"time"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// GetByID returns (nil, nil) when the payment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	// AttachGatewayOrder records the gateway order reference created at checkout.
	AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderId string) error
	// FindRecentByMember returns up to limit rows ordered by due date descending.
	FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Payment, error)
	// UpdateStatusByOrderID resolves the gateway webhook reference.
	UpdateStatusByOrderID(ctx context.Context, orderId string, status entity.PaymentStatus, paidAt *time.Time) error
	// MarkOverdueLate flips past-due "pendente" rows to "atrasado" and returns
	// the number of rows changed.
	MarkOverdueLate(ctx context.Context, now time.Time) (int64, error)
}
