package churn

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gym-retention-be/internal/entity"
)

// The single weight table of the model. Both the request path and the batch
// path score through this Scorer; the weights exist nowhere else.
const (
	baseRate                      = 0.15
	weightAttendanceFrequency     = -0.4
	weightDaysSinceLastAttendance = 0.03
	weightHasLatePayment          = 0.2
	weightPaymentDelayDays        = 0.01
	weightInvertedRating          = 0.15
)

// Factor thresholds.
const (
	absenceFactorDays     = 14
	lowRatingThreshold    = 3.0
	lowFrequencyThreshold = 0.2
)

// Score is the output of one scoring run.
type Score struct {
	Probability float64
	Confidence  float64
	Factors     []entity.ChurnFactor
}

// Scorer applies the fixed linear model. The randomness source only feeds the
// confidence placeholder and is injected so tests can seed it. The mutex makes
// the draw safe under the concurrent batch path.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScorer(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Calculate computes churn probability, confidence and contributing factors.
// Probability and factors are deterministic for fixed features; confidence is
// a uniform draw in [0.7, 0.9) with no statistical grounding yet.
func (s *Scorer) Calculate(f Features) Score {
	latePayment := 0.0
	if f.HasLatePayment {
		latePayment = 1.0
	}

	logit := baseRate +
		f.AttendanceFrequency*weightAttendanceFrequency +
		float64(f.DaysSinceLastAttendance)*weightDaysSinceLastAttendance +
		latePayment*weightHasLatePayment +
		float64(f.PaymentDelayDays)*weightPaymentDelayDays +
		(5-f.AverageRating)*weightInvertedRating

	s.mu.Lock()
	confidence := 0.7 + s.rng.Float64()*0.2
	s.mu.Unlock()

	return Score{
		Probability: sigmoid(logit),
		Confidence:  confidence,
		Factors:     buildFactors(f),
	}
}

// buildFactors evaluates each condition independently and preserves the
// presentation order: long absence, late payment, low rating, low frequency.
func buildFactors(f Features) []entity.ChurnFactor {
	factors := make([]entity.ChurnFactor, 0, 4)

	if f.DaysSinceLastAttendance > absenceFactorDays {
		factors = append(factors, entity.ChurnFactor{
			Type:        entity.FactorTypeAttendance,
			Description: fmt.Sprintf("%d days without attending", f.DaysSinceLastAttendance),
			Impact:      entity.FactorImpactHigh,
		})
	}

	if f.HasLatePayment {
		factors = append(factors, entity.ChurnFactor{
			Type:        entity.FactorTypePayment,
			Description: fmt.Sprintf("Payment late by %d days", f.PaymentDelayDays),
			Impact:      entity.FactorImpactHigh,
		})
	}

	if f.AverageRating < lowRatingThreshold {
		factors = append(factors, entity.ChurnFactor{
			Type:        entity.FactorTypeFeedback,
			Description: fmt.Sprintf("Low average rating: %.1f/5", f.AverageRating),
			Impact:      entity.FactorImpactMedium,
		})
	}

	if f.AttendanceFrequency < lowFrequencyThreshold {
		factors = append(factors, entity.ChurnFactor{
			Type:        entity.FactorTypeAttendance,
			Description: fmt.Sprintf("Low frequency: %d days/month", int(math.Round(f.AttendanceFrequency*AttendanceWindow))),
			Impact:      entity.FactorImpactMedium,
		})
	}

	return factors
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
