package churn

import (
	"math"
	"time"

	"gym-retention-be/internal/entity"
)

// Row windows read per prediction. The frequency denominator stays fixed at
// 30 even when fewer rows exist, so members with less than a full month of
// history score as low-frequency.
const (
	AttendanceWindow = 30
	PaymentWindow    = 6
	FeedbackWindow   = 5
)

const (
	defaultDaysSinceLastAttendance = 30
	defaultAverageRating           = 3.0
	defaultAge                     = 30
	defaultGender                  = "unknown"
)

// Features is the fixed-shape input of the scoring model. Gender is carried
// for reporting but does not enter the probability formula.
type Features struct {
	AttendanceFrequency     float64
	DaysSinceLastAttendance int
	HasLatePayment          bool
	PaymentDelayDays        int
	AverageRating           float64
	Age                     int
	Gender                  string
}

// ExtractFeatures derives the feature record from a member's recent history.
// Pure function: all inputs are passed in, including the reference time.
func ExtractFeatures(now time.Time, member *entity.Member, attendances []*entity.Attendance, payments []*entity.Payment, feedbacks []*entity.Feedback) Features {
	f := Features{
		AttendanceFrequency:     float64(len(attendances)) / float64(AttendanceWindow),
		DaysSinceLastAttendance: defaultDaysSinceLastAttendance,
		AverageRating:           defaultAverageRating,
		Age:                     defaultAge,
		Gender:                  defaultGender,
	}

	if len(attendances) > 0 {
		// Rows arrive ordered by date descending; the first is the most recent.
		f.DaysSinceLastAttendance = daysBetween(attendances[0].Date, now)
	}

	f.HasLatePayment, f.PaymentDelayDays = latePaymentSignals(now, payments)

	if len(feedbacks) > 0 {
		// A missing rating counts as 0 here, matching the legacy dashboard's
		// coalescing. It drags the average down instead of being excluded.
		var sum float64
		for _, fb := range feedbacks {
			if fb.Rating != nil {
				sum += *fb.Rating
			}
		}
		f.AverageRating = sum / float64(len(feedbacks))
	}

	if member != nil {
		if member.Age != nil {
			f.Age = *member.Age
		}
		if member.Gender != nil && *member.Gender != "" {
			f.Gender = *member.Gender
		}
	}

	return f
}

// latePaymentSignals reports whether any payment is late and the worst delay.
// A payment counts as late when its status is "atrasado", or when it is still
// "pendente" past its due date. The delay figure however only considers rows
// explicitly marked "atrasado": an overdue "pendente" row trips the flag but
// contributes no delay days, in which case the delay is 0.
func latePaymentSignals(now time.Time, payments []*entity.Payment) (bool, int) {
	hasLate := false
	maxDelay := 0

	for _, p := range payments {
		switch p.Status {
		case entity.PaymentStatusLate:
			hasLate = true
			if delay := daysBetween(p.DueDate, now); delay > maxDelay {
				maxDelay = delay
			}
		case entity.PaymentStatusPending:
			if p.DueDate.Before(now) {
				hasLate = true
			}
		}
	}

	return hasLate, maxDelay
}

func daysBetween(from, to time.Time) int {
	days := int(math.Floor(to.Sub(from).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
