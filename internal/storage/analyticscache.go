package storage

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"
)

const (
	analyticsTTL        = time.Minute
	maxAnalyticsEntries = 10000
)

// AnalyticsCache keeps computed analytics responses for a short while so
// dashboard polling does not re-run the aggregation queries. Entries are
// dropped whenever the user writes a new mood or chat row.
type AnalyticsCache struct {
	cache *ristretto.Cache[string, any]
}

func NewAnalyticsCache() *AnalyticsCache {
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: maxAnalyticsEntries,
		MaxCost:     maxAnalyticsEntries,
		BufferItems: 64,
	})

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create analytics cache")
	}

	return &AnalyticsCache{
		cache: c,
	}
}

func analyticsKey(metric string, userID uint) string {
	return fmt.Sprintf("%s:%d", metric, userID)
}

func (s *AnalyticsCache) Get(metric string, userID uint) (any, bool) {
	return s.cache.Get(analyticsKey(metric, userID))
}

func (s *AnalyticsCache) Set(metric string, userID uint, value any) {
	s.cache.SetWithTTL(analyticsKey(metric, userID), value, 1, analyticsTTL)
	s.cache.Wait()
}

// InvalidateUser removes every cached metric for the user.
func (s *AnalyticsCache) InvalidateUser(userID uint) {
	for _, metric := range []string{"mood-trend", "mood-summary", "chat-words"} {
		s.cache.Del(analyticsKey(metric, userID))
	}
	s.cache.Wait()
}
