package churn

import (
	"testing"

	"gym-retention-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecommendationsBaseSets(t *testing.T) {
	tests := []struct {
		risk        entity.RiskLevel
		wantActions []string
		wantPrios   []int
	}{
		{entity.RiskLevelHigh, []string{"phone_call", "discount_offer"}, []int{1, 2}},
		{entity.RiskLevelMedium, []string{"personalized_message", "free_trial_class"}, []int{1, 2}},
		{entity.RiskLevelLow, []string{"newsletter"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.risk), func(t *testing.T) {
			recs := BuildRecommendations(tt.risk, nil)
			require.Len(t, recs, len(tt.wantActions))
			for i, rec := range recs {
				assert.Equal(t, tt.wantActions[i], rec.ActionType)
				assert.Equal(t, tt.wantPrios[i], rec.Priority)
			}
		})
	}
}

func TestBuildRecommendationsStableSort(t *testing.T) {
	// High risk with high-impact attendance and payment factors: the three
	// priority-1 entries keep insertion order (base call first, then the
	// factor-derived actions in factor order).
	factors := []entity.ChurnFactor{
		{Type: entity.FactorTypeAttendance, Description: "20 days without attending", Impact: entity.FactorImpactHigh},
		{Type: entity.FactorTypePayment, Description: "Payment late by 8 days", Impact: entity.FactorImpactHigh},
	}

	recs := BuildRecommendations(entity.RiskLevelHigh, factors)
	require.Len(t, recs, 4)

	assert.Equal(t, "phone_call", recs[0].ActionType)
	assert.Equal(t, "regularity_reminder", recs[1].ActionType)
	assert.Equal(t, "payment_reminder", recs[2].ActionType)
	assert.Equal(t, "discount_offer", recs[3].ActionType)

	assert.Equal(t, []int{1, 1, 1, 2}, []int{recs[0].Priority, recs[1].Priority, recs[2].Priority, recs[3].Priority})
}

func TestBuildRecommendationsFactorPriorities(t *testing.T) {
	// Payment and feedback factors derive their priority from impact;
	// attendance factors only appear at high impact at all.
	factors := []entity.ChurnFactor{
		{Type: entity.FactorTypeAttendance, Impact: entity.FactorImpactMedium},
		{Type: entity.FactorTypePayment, Impact: entity.FactorImpactMedium},
		{Type: entity.FactorTypeFeedback, Impact: entity.FactorImpactMedium},
		{Type: entity.FactorTypeFeedback, Impact: entity.FactorImpactHigh},
	}

	recs := BuildRecommendations(entity.RiskLevelLow, factors)

	var actions []string
	var prios []int
	for _, rec := range recs {
		actions = append(actions, rec.ActionType)
		prios = append(prios, rec.Priority)
	}

	// Medium-impact attendance produces nothing; payment lands at 2,
	// feedback at 3 (medium) and 2 (high), base newsletter at 3.
	assert.Equal(t, []string{"payment_reminder", "feedback_request", "newsletter", "feedback_request"}, actions)
	assert.Equal(t, []int{2, 2, 3, 3}, prios)
}
