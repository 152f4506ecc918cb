package memory

import (
	"time"

	"gym-retention-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PredictionCache keeps the most recent prediction per member in process
// memory so the dashboard's latest-prediction reads skip the database.
type PredictionCache struct {
	cache *cache.Cache
}

func NewPredictionCache() *PredictionCache {
	// Entries expire after 1 hour; expired items are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &PredictionCache{
		cache: c,
	}
}

func (r *PredictionCache) Save(prediction *entity.ChurnPrediction) {
	r.cache.Set(prediction.MemberId.String(), prediction, cache.DefaultExpiration)
}

func (r *PredictionCache) Get(memberId uuid.UUID) (*entity.ChurnPrediction, bool) {
	if x, found := r.cache.Get(memberId.String()); found {
		return x.(*entity.ChurnPrediction), true
	}
	return nil, false
}

func (r *PredictionCache) Delete(memberId uuid.UUID) {
	r.cache.Delete(memberId.String())
}
