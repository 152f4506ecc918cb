package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeChurnPredictionCreated = "CHURN_PREDICTION_CREATED"
	TypeModelEvaluated         = "CHURN_MODEL_EVALUATED"
	TypePaymentOverdue         = "PAYMENT_OVERDUE"
)

// NewChurnPredictionCreated is emitted after every persisted prediction.
func NewChurnPredictionCreated(predictionId, memberId uuid.UUID, probability float64, riskLevel string) Event {
	return BaseEvent{
		Type: TypeChurnPredictionCreated,
		Data: map[string]interface{}{
			"prediction_id": predictionId.String(),
			"member_id":     memberId.String(),
			"probability":   probability,
			"risk_level":    riskLevel,
		},
		OccurredAt: time.Now(),
	}
}

// NewModelEvaluated is emitted after a metrics snapshot is stored.
func NewModelEvaluated(metricsId uuid.UUID, accuracy, f1 float64, totalPredictions int) Event {
	return BaseEvent{
		Type: TypeModelEvaluated,
		Data: map[string]interface{}{
			"metrics_id":        metricsId.String(),
			"accuracy":          accuracy,
			"f1_score":          f1,
			"total_predictions": totalPredictions,
		},
		OccurredAt: time.Now(),
	}
}

// NewPaymentOverdue is emitted by the overdue sweep with the number of
// payments it flipped to the late status.
func NewPaymentOverdue(markedLate int64) Event {
	return BaseEvent{
		Type: TypePaymentOverdue,
		Data: map[string]interface{}{
			"marked_late": markedLate,
		},
		OccurredAt: time.Now(),
	}
}
