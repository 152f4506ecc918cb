package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/repository/contract"
	"gym-retention-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[uuid.UUID]*entity.Member
	failGet map[uuid.UUID]bool
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		members: make(map[uuid.UUID]*entity.Member),
		failGet: make(map[uuid.UUID]bool),
	}
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.Id] = member
	return nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet[id] {
		return nil, fmt.Errorf("simulated read failure")
	}
	return r.members[id], nil
}

func (r *fakeMemberRepo) FindAllByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Member
	for _, m := range r.members {
		if m.Status == status {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id.String() < out[j].Id.String() })
	return out, nil
}

func (r *fakeMemberRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Member
	for _, m := range r.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id.String() < out[j].Id.String() })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMemberRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MemberStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.members[id]; ok {
		m.Status = status
	}
	return nil
}

func (r *fakeMemberRepo) CountByStatus(ctx context.Context, status entity.MemberStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, m := range r.members {
		if m.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeAttendanceRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]*entity.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[uuid.UUID][]*entity.Attendance)}
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a *entity.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[a.MemberId] = append(r.rows[a.MemberId], a)
	return nil
}

func (r *fakeAttendanceRepo) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]*entity.Attendance(nil), r.rows[memberId]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakePaymentRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{rows: make(map[uuid.UUID][]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.MemberId] = append(r.rows[p.MemberId], p)
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rows := range r.rows {
		for _, p := range rows {
			if p.Id == id {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rows := range r.rows {
		for _, p := range rows {
			if p.Id == id {
				p.GatewayOrderId = &orderId
			}
		}
	}
	return nil
}

func (r *fakePaymentRepo) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]*entity.Payment(nil), r.rows[memberId]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].DueDate.After(rows[j].DueDate) })
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakePaymentRepo) UpdateStatusByOrderID(ctx context.Context, orderId string, status entity.PaymentStatus, paidAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rows := range r.rows {
		for _, p := range rows {
			if p.GatewayOrderId != nil && *p.GatewayOrderId == orderId {
				p.Status = status
				if paidAt != nil {
					p.PaidAt = paidAt
				}
			}
		}
	}
	return nil
}

func (r *fakePaymentRepo) MarkOverdueLate(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var marked int64
	for _, rows := range r.rows {
		for _, p := range rows {
			if p.Status == entity.PaymentStatusPending && p.DueDate.Before(now) {
				p.Status = entity.PaymentStatusLate
				marked++
			}
		}
	}
	return marked, nil
}

type fakeFeedbackRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]*entity.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: make(map[uuid.UUID][]*entity.Feedback)}
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[f.MemberId] = append(r.rows[f.MemberId], f)
	return nil
}

func (r *fakeFeedbackRepo) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]*entity.Feedback(nil), r.rows[memberId]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakePredictionRepo struct {
	mu          sync.Mutex
	predictions []*entity.ChurnPrediction
}

func newFakePredictionRepo() *fakePredictionRepo {
	return &fakePredictionRepo{}
}

func (r *fakePredictionRepo) Create(ctx context.Context, p *entity.ChurnPrediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predictions = append(r.predictions, p)
	return nil
}

func (r *fakePredictionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChurnPrediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.predictions {
		if p.Id == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePredictionRepo) FindLatestByMember(ctx context.Context, memberId uuid.UUID) (*entity.ChurnPrediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.ChurnPrediction
	for _, p := range r.predictions {
		if p.MemberId != memberId {
			continue
		}
		if latest == nil || p.PredictionDate.After(latest.PredictionDate) {
			latest = p
		}
	}
	return latest, nil
}

func (r *fakePredictionRepo) FindOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.ChurnPrediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChurnPrediction
	for _, p := range r.predictions {
		if p.PredictionDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePredictionRepo) CountByRiskLevel(ctx context.Context) (map[entity.RiskLevel]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[entity.RiskLevel]int64)
	for _, p := range r.predictions {
		out[p.RiskLevel]++
	}
	return out, nil
}

func (r *fakePredictionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.predictions)
}

type fakeMetricsRepo struct {
	mu      sync.Mutex
	metrics []*entity.ModelMetrics
}

func newFakeMetricsRepo() *fakeMetricsRepo {
	return &fakeMetricsRepo{}
}

func (r *fakeMetricsRepo) Create(ctx context.Context, m *entity.ModelMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, m)
	return nil
}

func (r *fakeMetricsRepo) FindLatest(ctx context.Context) (*entity.ModelMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.metrics) == 0 {
		return nil, nil
	}
	return r.metrics[len(r.metrics)-1], nil
}

type fakeNotificationRepo struct {
	mu   sync.Mutex
	rows []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, n)
	return nil
}

func (r *fakeNotificationRepo) FindRecentByMember(ctx context.Context, memberId uuid.UUID, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.rows {
		if n.MemberId == memberId {
			out = append(out, n)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeStaffRepo struct {
	mu    sync.Mutex
	staff map[string]*entity.StaffUser
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*entity.StaffUser)}
}

func (r *fakeStaffRepo) Create(ctx context.Context, s *entity.StaffUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff[s.Email] = s
	return nil
}

func (r *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staff[email], nil
}

// fakeUnitOfWork hands out the same fake repositories for every call.
type fakeUnitOfWork struct {
	members       *fakeMemberRepo
	attendances   *fakeAttendanceRepo
	payments      *fakePaymentRepo
	feedbacks     *fakeFeedbackRepo
	predictions   *fakePredictionRepo
	metrics       *fakeMetricsRepo
	notifications *fakeNotificationRepo
	staff         *fakeStaffRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		members:       newFakeMemberRepo(),
		attendances:   newFakeAttendanceRepo(),
		payments:      newFakePaymentRepo(),
		feedbacks:     newFakeFeedbackRepo(),
		predictions:   newFakePredictionRepo(),
		metrics:       newFakeMetricsRepo(),
		notifications: newFakeNotificationRepo(),
		staff:         newFakeStaffRepo(),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) MemberRepository() contract.MemberRepository { return u.members }
func (u *fakeUnitOfWork) AttendanceRepository() contract.AttendanceRepository {
	return u.attendances
}
func (u *fakeUnitOfWork) PaymentRepository() contract.PaymentRepository   { return u.payments }
func (u *fakeUnitOfWork) FeedbackRepository() contract.FeedbackRepository { return u.feedbacks }
func (u *fakeUnitOfWork) ChurnPredictionRepository() contract.ChurnPredictionRepository {
	return u.predictions
}
func (u *fakeUnitOfWork) ModelMetricsRepository() contract.ModelMetricsRepository {
	return u.metrics
}
func (u *fakeUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return u.notifications
}
func (u *fakeUnitOfWork) StaffRepository() contract.StaffRepository { return u.staff }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
