package dto

import (
	"time"

	"github.com/google/uuid"

	"gym-retention-be/internal/entity"
)

// PredictRequest carries either a single member id or the batch flag,
// never both.
type PredictRequest struct {
	MemberId     *uuid.UUID `json:"member_id"`
	BatchProcess bool       `json:"batch_process"`
}

type PredictionResponse struct {
	Id               uuid.UUID            `json:"id"`
	MemberId         uuid.UUID            `json:"member_id"`
	ChurnProbability float64              `json:"churn_probability"`
	ConfidenceScore  float64              `json:"confidence_score"`
	RiskLevel        entity.RiskLevel     `json:"risk_level"`
	Factors          []entity.ChurnFactor `json:"factors"`
	PredictionDate   time.Time            `json:"prediction_date"`
}

type BatchPredictionResponse struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

// PredictionCreatedMessage is the internal queue payload consumed by the
// alert pipeline.
type PredictionCreatedMessage struct {
	PredictionId uuid.UUID `json:"prediction_id"`
}

type RecommendationsRequest struct {
	MemberId     uuid.UUID `json:"member_id" validate:"required"`
	PredictionId uuid.UUID `json:"prediction_id" validate:"required"`
}

type RecommendationsResponse struct {
	MemberId        uuid.UUID               `json:"member_id"`
	PredictionId    uuid.UUID               `json:"prediction_id"`
	RiskLevel       entity.RiskLevel        `json:"risk_level"`
	Recommendations []entity.Recommendation `json:"recommendations"`
}

type EvaluateRequest struct {
	DaysAgo *int `json:"days_ago" validate:"omitempty,gt=0"`
}

type EvaluationResponse struct {
	Id                uuid.UUID          `json:"id"`
	Accuracy          float64            `json:"accuracy"`
	Precision         float64            `json:"precision"`
	Recall            float64            `json:"recall"`
	F1Score           float64            `json:"f1_score"`
	TotalPredictions  int                `json:"total_predictions"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	CreatedAt         time.Time          `json:"created_at"`
}

type DashboardSummaryResponse struct {
	TotalMembers    int                        `json:"total_members"`
	ActiveMembers   int                        `json:"active_members"`
	InactiveMembers int                        `json:"inactive_members"`
	RiskBreakdown   map[entity.RiskLevel]int64 `json:"risk_breakdown"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}
