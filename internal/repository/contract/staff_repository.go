package contract

import (
	"context"

	"gym-retention-be/internal/entity"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.StaffUser) error
	// GetByEmail returns (nil, nil) when no staff user matches.
	GetByEmail(ctx context.Context, email string) (*entity.StaffUser, error)
}
