package mapper

import (
	"encoding/json"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/model"

	"gorm.io/datatypes"
)

type ChurnMapper struct{}

func NewChurnMapper() *ChurnMapper {
	return &ChurnMapper{}
}

func (m *ChurnMapper) PredictionToEntity(p *model.ChurnPrediction) *entity.ChurnPrediction {
	if p == nil {
		return nil
	}

	var factors []entity.ChurnFactor
	if len(p.Factors) > 0 {
		// A malformed factors column is treated as an empty factor list rather
		// than failing the whole read.
		_ = json.Unmarshal(p.Factors, &factors)
	}

	return &entity.ChurnPrediction{
		Id:               p.Id,
		MemberId:         p.MemberId,
		ChurnProbability: p.ChurnProbability,
		ConfidenceScore:  p.ConfidenceScore,
		RiskLevel:        entity.RiskLevel(p.RiskLevel),
		Factors:          factors,
		PredictionDate:   p.PredictionDate,
	}
}

func (m *ChurnMapper) PredictionToModel(e *entity.ChurnPrediction) *model.ChurnPrediction {
	if e == nil {
		return nil
	}

	factors := e.Factors
	if factors == nil {
		factors = []entity.ChurnFactor{}
	}
	raw, _ := json.Marshal(factors)

	return &model.ChurnPrediction{
		Id:               e.Id,
		MemberId:         e.MemberId,
		ChurnProbability: e.ChurnProbability,
		ConfidenceScore:  e.ConfidenceScore,
		RiskLevel:        string(e.RiskLevel),
		Factors:          datatypes.JSON(raw),
		PredictionDate:   e.PredictionDate,
	}
}

func (m *ChurnMapper) PredictionsToEntities(models []*model.ChurnPrediction) []*entity.ChurnPrediction {
	entities := make([]*entity.ChurnPrediction, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.PredictionToEntity(p))
	}
	return entities
}

func (m *ChurnMapper) MetricsToEntity(mm *model.ModelMetrics) *entity.ModelMetrics {
	if mm == nil {
		return nil
	}

	importance := make(map[string]float64)
	if len(mm.FeatureImportance) > 0 {
		_ = json.Unmarshal(mm.FeatureImportance, &importance)
	}

	return &entity.ModelMetrics{
		Id:                mm.Id,
		Accuracy:          mm.Accuracy,
		Precision:         mm.Precision,
		Recall:            mm.Recall,
		F1Score:           mm.F1Score,
		TotalPredictions:  mm.TotalPredictions,
		FeatureImportance: importance,
		CreatedAt:         mm.CreatedAt,
	}
}

func (m *ChurnMapper) MetricsToModel(e *entity.ModelMetrics) *model.ModelMetrics {
	if e == nil {
		return nil
	}
	raw, _ := json.Marshal(e.FeatureImportance)

	return &model.ModelMetrics{
		Id:                e.Id,
		Accuracy:          e.Accuracy,
		Precision:         e.Precision,
		Recall:            e.Recall,
		F1Score:           e.F1Score,
		TotalPredictions:  e.TotalPredictions,
		FeatureImportance: datatypes.JSON(raw),
		CreatedAt:         e.CreatedAt,
	}
}
