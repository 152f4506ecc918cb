package contract

import (
	"context"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Notification, error)
}
