package unitofwork

import (
	"context"

	"gym-retention-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MemberRepository() contract.MemberRepository
	AttendanceRepository() contract.AttendanceRepository
	PaymentRepository() contract.PaymentRepository
	FeedbackRepository() contract.FeedbackRepository
	ChurnPredictionRepository() contract.ChurnPredictionRepository
	ModelMetricsRepository() contract.ModelMetricsRepository
	NotificationRepository() contract.NotificationRepository
	StaffRepository() contract.StaffRepository
}
