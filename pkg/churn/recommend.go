package churn

import (
	"fmt"
	"sort"

	"gym-retention-be/internal/entity"
)

// BuildRecommendations produces retention actions for a stored prediction:
// a base set keyed by risk level plus one action per contributing factor.
// The list is stable-sorted ascending by priority, so equal-priority entries
// keep their insertion order.
func BuildRecommendations(riskLevel entity.RiskLevel, factors []entity.ChurnFactor) []entity.Recommendation {
	recommendations := baseRecommendations(riskLevel)

	for _, factor := range factors {
		switch factor.Type {
		case entity.FactorTypeAttendance:
			if factor.Impact == entity.FactorImpactHigh {
				recommendations = append(recommendations, entity.Recommendation{
					ActionType:  "regularity_reminder",
					Description: "Send a message encouraging a regular training routine",
					Priority:    factorPriority(factor.Impact, 1, 2),
				})
			}
		case entity.FactorTypePayment:
			recommendations = append(recommendations, entity.Recommendation{
				ActionType:  "payment_reminder",
				Description: fmt.Sprintf("Send a payment reminder: %s", factor.Description),
				Priority:    factorPriority(factor.Impact, 1, 2),
			})
		case entity.FactorTypeFeedback:
			recommendations = append(recommendations, entity.Recommendation{
				ActionType:  "feedback_request",
				Description: "Reach out to understand the member's dissatisfaction",
				Priority:    factorPriority(factor.Impact, 2, 3),
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority < recommendations[j].Priority
	})

	return recommendations
}

func baseRecommendations(riskLevel entity.RiskLevel) []entity.Recommendation {
	switch riskLevel {
	case entity.RiskLevelHigh:
		return []entity.Recommendation{
			{ActionType: "phone_call", Description: "Call the member to understand their situation", Priority: 1},
			{ActionType: "discount_offer", Description: "Offer a renewal discount", Priority: 2},
		}
	case entity.RiskLevelMedium:
		return []entity.Recommendation{
			{ActionType: "personalized_message", Description: "Send a personalized check-in message", Priority: 1},
			{ActionType: "free_trial_class", Description: "Invite the member to a free class of a new modality", Priority: 2},
		}
	default:
		return []entity.Recommendation{
			{ActionType: "newsletter", Description: "Keep the member engaged via the monthly newsletter", Priority: 3},
		}
	}
}

func factorPriority(impact entity.FactorImpact, high, other int) int {
	if impact == entity.FactorImpactHigh {
		return high
	}
	return other
}
