package contract

import (
	"context"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	// GetByID returns (nil, nil) when the member does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	FindAllByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Member, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MemberStatus) error
	CountByStatus(ctx context.Context, status entity.MemberStatus) (int, error)
}
