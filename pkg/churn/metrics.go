package churn

// churnDecisionThreshold converts a stored probability into a binary
// churn call when evaluating past predictions.
const churnDecisionThreshold = 0.5

// ConfusionMatrix accumulates prediction-vs-outcome pairs.
type ConfusionMatrix struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Add classifies one pair into the matrix.
func (m *ConfusionMatrix) Add(predictedChurn, actuallyChurned bool) {
	switch {
	case predictedChurn && actuallyChurned:
		m.TruePositives++
	case predictedChurn && !actuallyChurned:
		m.FalsePositives++
	case !predictedChurn && actuallyChurned:
		m.FalseNegatives++
	default:
		m.TrueNegatives++
	}
}

func (m *ConfusionMatrix) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// PredictedChurn applies the decision threshold to a stored probability.
func PredictedChurn(probability float64) bool {
	return probability > churnDecisionThreshold
}

// Metrics derives accuracy/precision/recall/F1 from the matrix. Every
// division guard collapses to 0 rather than NaN so an empty or degenerate
// matrix still yields comparable numbers.
func (m *ConfusionMatrix) Metrics() (accuracy, precision, recall, f1 float64) {
	total := m.Total()
	if total == 0 {
		return 0, 0, 0, 0
	}

	accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(total)

	if m.TruePositives+m.FalsePositives > 0 {
		precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}
	if m.TruePositives+m.FalseNegatives > 0 {
		recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return accuracy, precision, recall, f1
}

// FeatureImportance is the static breakdown persisted with every metrics
// snapshot. The percentages restate the weight table as metadata; they are
// not recomputed from data.
func FeatureImportance() map[string]float64 {
	return map[string]float64{
		"attendance_frequency":       30,
		"days_since_last_attendance": 25,
		"late_payment":               20,
		"average_rating":             15,
		"payment_delay_days":         10,
	}
}
