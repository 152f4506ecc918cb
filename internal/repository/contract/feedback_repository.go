package contract

import (
	"context"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	// FindRecentByMember returns up to limit rows ordered by date descending.
	FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Feedback, error)
}
