package service

import (
	"context"
	"encoding/json"

	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/classpulse/engage-backend/internal/repository"
	"github.com/classpulse/engage-backend/pkg/cache"
	"github.com/classpulse/engage-backend/pkg/logger"
)

// ProfileResolver resolves user IDs to display-safe profile fragments
type ProfileResolver interface {
	Resolve(ctx context.Context, userIDs []uint64) (map[uint64]domain.UserBrief, error)
}

type profileResolver struct {
	users repository.UserRepository
	cache cache.Service
}

// NewProfileResolver creates a cache-backed ProfileResolver
func NewProfileResolver(users repository.UserRepository, cacheService cache.Service) ProfileResolver {
	return &profileResolver{users: users, cache: cacheService}
}

// Resolve batch-loads profiles, serving cached entries where possible.
// IDs without a matching account resolve to a bare {id} fragment so
// callers never lose list positions to deleted users.
func (p *profileResolver) Resolve(ctx context.Context, userIDs []uint64) (map[uint64]domain.UserBrief, error) {
	result := make(map[uint64]domain.UserBrief, len(userIDs))
	var missing []uint64

	seen := make(map[uint64]bool, len(userIDs))
	for _, id := range userIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		if p.cache != nil && p.cache.IsAvailable() {
			if data, err := p.cache.GetProfile(ctx, id); err == nil {
				var brief domain.UserBrief
				if json.Unmarshal(data, &brief) == nil {
					result[id] = brief
					continue
				}
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	users, err := p.users.FindByIDs(missing)
	if err != nil {
		return nil, err
	}

	for i := range users {
		brief := users[i].ToBrief()
		result[brief.ID] = brief
		if p.cache != nil {
			if err := p.cache.SetProfile(ctx, brief.ID, brief); err != nil {
				logger.Warn("cache: failed to set profile %d: %v", brief.ID, err)
			}
		}
	}

	// Fill placeholders for IDs with no account row
	for _, id := range missing {
		if _, ok := result[id]; !ok {
			result[id] = domain.UserBrief{ID: id}
		}
	}

	return result, nil
}
