package churn

import "gym-retention-be/internal/entity"

// ClassifyRisk maps a probability onto the three risk tiers. The input is
// clamped to [0,1] first so a caller passing a raw value cannot skew the tier.
func ClassifyRisk(probability float64) entity.RiskLevel {
	p := probability
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	switch {
	case p < 0.3:
		return entity.RiskLevelLow
	case p < 0.7:
		return entity.RiskLevelMedium
	default:
		return entity.RiskLevelHigh
	}
}
