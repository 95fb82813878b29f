package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"innflow/internal/onboarding/models"
)

const statsCacheTTL = 60 * time.Second

// Statistics returns the aggregation over requests visible to the caller.
// Results are cached per scope for a short window; a cold or failing cache
// falls through to the store.
func (s *Service) Statistics(ctx context.Context, actorID int64) (*models.Statistics, error) {
	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}

	key := statsCacheKey(scope)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "statistics cache read failed", "error", err)
		} else if cached != nil {
			var stats models.Statistics
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.requests.Aggregate(ctx, scope.department())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, encoded, statsCacheTTL); err != nil {
				s.logger.WarnContext(ctx, "statistics cache write failed", "error", err)
			}
		}
	}
	return stats, nil
}

func statsCacheKey(scope Scope) string {
	if scope.Global {
		return "onboarding:stats:global"
	}
	return fmt.Sprintf("onboarding:stats:dept:%d", scope.DepartmentID)
}
