package churn

import (
	"testing"
	"time"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ptrInt(v int) *int          { return &v }
func ptrStr(v string) *string    { return &v }
func ptrFloat(v float64) *float64 { return &v }

func attendanceOn(date time.Time) *entity.Attendance {
	return &entity.Attendance{
		Id:       uuid.New(),
		MemberId: uuid.New(),
		Date:     date,
	}
}

func paymentWith(status entity.PaymentStatus, dueDate time.Time) *entity.Payment {
	return &entity.Payment{
		Id:       uuid.New(),
		MemberId: uuid.New(),
		Amount:   150,
		DueDate:  dueDate,
		Status:   status,
	}
}

func feedbackRated(rating *float64) *entity.Feedback {
	return &entity.Feedback{
		Id:       uuid.New(),
		MemberId: uuid.New(),
		Date:     testNow.AddDate(0, 0, -1),
		Rating:   rating,
	}
}

func TestExtractFeaturesDefaults(t *testing.T) {
	member := &entity.Member{Id: uuid.New(), Status: entity.MemberStatusActive}

	f := ExtractFeatures(testNow, member, nil, nil, nil)

	if f.AttendanceFrequency != 0 {
		t.Errorf("AttendanceFrequency = %v, want 0", f.AttendanceFrequency)
	}
	if f.DaysSinceLastAttendance != 30 {
		t.Errorf("DaysSinceLastAttendance = %d, want 30", f.DaysSinceLastAttendance)
	}
	if f.HasLatePayment {
		t.Error("HasLatePayment = true, want false")
	}
	if f.PaymentDelayDays != 0 {
		t.Errorf("PaymentDelayDays = %d, want 0", f.PaymentDelayDays)
	}
	if f.AverageRating != 3.0 {
		t.Errorf("AverageRating = %v, want 3.0", f.AverageRating)
	}
	if f.Age != 30 {
		t.Errorf("Age = %d, want 30", f.Age)
	}
	if f.Gender != "unknown" {
		t.Errorf("Gender = %q, want %q", f.Gender, "unknown")
	}
}

func TestExtractFeaturesAttendance(t *testing.T) {
	attendances := make([]*entity.Attendance, 0, 15)
	for i := 0; i < 15; i++ {
		attendances = append(attendances, attendanceOn(testNow.AddDate(0, 0, -(i*2+2))))
	}

	f := ExtractFeatures(testNow, nil, attendances, nil, nil)

	if f.AttendanceFrequency != 0.5 {
		t.Errorf("AttendanceFrequency = %v, want 0.5", f.AttendanceFrequency)
	}
	if f.DaysSinceLastAttendance != 2 {
		t.Errorf("DaysSinceLastAttendance = %d, want 2", f.DaysSinceLastAttendance)
	}
}

func TestExtractFeaturesShortHistoryKeepsFixedDenominator(t *testing.T) {
	// A member with only 3 visits still divides by 30, not by their history length.
	attendances := []*entity.Attendance{
		attendanceOn(testNow.AddDate(0, 0, -1)),
		attendanceOn(testNow.AddDate(0, 0, -3)),
		attendanceOn(testNow.AddDate(0, 0, -5)),
	}

	f := ExtractFeatures(testNow, nil, attendances, nil, nil)

	if f.AttendanceFrequency != 0.1 {
		t.Errorf("AttendanceFrequency = %v, want 0.1", f.AttendanceFrequency)
	}
}

func TestLatePaymentSignals(t *testing.T) {
	tests := []struct {
		name         string
		payments     []*entity.Payment
		wantHasLate  bool
		wantDelayDays int
	}{
		{
			name:     "no payments",
			payments: nil,
		},
		{
			name: "all paid",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusPaid, testNow.AddDate(0, 0, -10)),
			},
		},
		{
			name: "late payment sets flag and delay",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusLate, testNow.AddDate(0, 0, -12)),
			},
			wantHasLate:   true,
			wantDelayDays: 12,
		},
		{
			name: "max delay across late payments",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusLate, testNow.AddDate(0, 0, -5)),
				paymentWith(entity.PaymentStatusLate, testNow.AddDate(0, 0, -20)),
			},
			wantHasLate:   true,
			wantDelayDays: 20,
		},
		{
			name: "overdue pending trips flag but not delay",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusPending, testNow.AddDate(0, 0, -7)),
			},
			wantHasLate:   true,
			wantDelayDays: 0,
		},
		{
			name: "pending before due date is fine",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusPending, testNow.AddDate(0, 0, 5)),
			},
		},
		{
			name: "overdue pending does not widen the late delay",
			payments: []*entity.Payment{
				paymentWith(entity.PaymentStatusLate, testNow.AddDate(0, 0, -3)),
				paymentWith(entity.PaymentStatusPending, testNow.AddDate(0, 0, -25)),
			},
			wantHasLate:   true,
			wantDelayDays: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFeatures(testNow, nil, nil, tt.payments, nil)
			if f.HasLatePayment != tt.wantHasLate {
				t.Errorf("HasLatePayment = %v, want %v", f.HasLatePayment, tt.wantHasLate)
			}
			if f.PaymentDelayDays != tt.wantDelayDays {
				t.Errorf("PaymentDelayDays = %d, want %d", f.PaymentDelayDays, tt.wantDelayDays)
			}
		})
	}
}

func TestExtractFeaturesAverageRating(t *testing.T) {
	tests := []struct {
		name      string
		feedbacks []*entity.Feedback
		want      float64
	}{
		{
			name: "mean of ratings",
			feedbacks: []*entity.Feedback{
				feedbackRated(ptrFloat(4)),
				feedbackRated(ptrFloat(2)),
			},
			want: 3,
		},
		{
			name: "missing rating counts as zero",
			feedbacks: []*entity.Feedback{
				feedbackRated(ptrFloat(4)),
				feedbackRated(nil),
			},
			want: 2,
		},
		{
			name:      "no feedback defaults to 3.0",
			feedbacks: nil,
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFeatures(testNow, nil, nil, nil, tt.feedbacks)
			if f.AverageRating != tt.want {
				t.Errorf("AverageRating = %v, want %v", f.AverageRating, tt.want)
			}
		})
	}
}

func TestExtractFeaturesProfile(t *testing.T) {
	member := &entity.Member{
		Id:     uuid.New(),
		Age:    ptrInt(25),
		Gender: ptrStr("feminino"),
	}

	f := ExtractFeatures(testNow, member, nil, nil, nil)

	if f.Age != 25 {
		t.Errorf("Age = %d, want 25", f.Age)
	}
	if f.Gender != "feminino" {
		t.Errorf("Gender = %q, want %q", f.Gender, "feminino")
	}
}
