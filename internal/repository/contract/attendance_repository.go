package contract

import (
	"context"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	// FindRecentByMember returns up to limit rows ordered by date descending.
	// An empty result is valid, not an error.
	FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Attendance, error)
}
