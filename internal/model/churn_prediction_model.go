package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChurnPrediction struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberId         uuid.UUID      `gorm:"type:uuid;not null;index:idx_churn_predictions_member_date,priority:1"`
	ChurnProbability float64        `gorm:"not null"`
	ConfidenceScore  float64        `gorm:"not null"`
	RiskLevel        string         `gorm:"type:varchar(10);not null;index"`
	Factors          datatypes.JSON `gorm:"type:jsonb"`
	PredictionDate   time.Time      `gorm:"not null;index:idx_churn_predictions_member_date,priority:2,sort:desc"`
}

func (ChurnPrediction) TableName() string {
	return "churn_predictions"
}

type ModelMetrics struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Accuracy          float64        `gorm:"not null"`
	Precision         float64        `gorm:"column:precision;not null"`
	Recall            float64        `gorm:"not null"`
	F1Score           float64        `gorm:"column:f1_score;not null"`
	TotalPredictions  int            `gorm:"not null"`
	FeatureImportance datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (ModelMetrics) TableName() string {
	return "churn_model_metrics"
}
