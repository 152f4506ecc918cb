package entity

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "baixo"
	RiskLevelMedium RiskLevel = "médio"
	RiskLevelHigh   RiskLevel = "alto"
)

type FactorImpact string

const (
	FactorImpactHigh   FactorImpact = "alto"
	FactorImpactMedium FactorImpact = "medio"
)

type FactorType string

const (
	FactorTypeAttendance FactorType = "attendance"
	FactorTypePayment    FactorType = "payment"
	FactorTypeFeedback   FactorType = "feedback"
)

type ChurnFactor struct {
	Type        FactorType   `json:"type"`
	Description string       `json:"description"`
	Impact      FactorImpact `json:"impact"`
}

// ChurnPrediction is insert-only: every scoring run creates a new row and
// historical rows are never mutated.
type ChurnPrediction struct {
	Id               uuid.UUID
	MemberId         uuid.UUID
	ChurnProbability float64
	ConfidenceScore  float64
	RiskLevel        RiskLevel
	Factors          []ChurnFactor
	PredictionDate   time.Time
}

type ModelMetrics struct {
	Id                uuid.UUID
	Accuracy          float64
	Precision         float64
	Recall            float64
	F1Score           float64
	TotalPredictions  int
	FeatureImportance map[string]float64
	CreatedAt         time.Time
}

type Recommendation struct {
	ActionType  string `json:"action_type"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}
