package service

import (
	"context"

	"invest-agent/domain"
	"invest-agent/repository"
)

const realEstateCacheKind = "real_estate"

type RealEstateService struct {
	cache repository.CacheRepository
}

// NewRealEstateService creates the profitability analyzer service. cache may
// be nil.
func NewRealEstateService(cache repository.CacheRepository) *RealEstateService {
	return &RealEstateService{cache: cache}
}

// Analyze validates input, then returns the cached analysis for an identical
// request or computes a fresh one.
func (s *RealEstateService) Analyze(
	ctx context.Context,
	input domain.RealEstateRequest,
) (domain.RealEstateResult, error) {

	resolved, err := ResolveRealEstateRequest(input)
	if err != nil {
		return domain.RealEstateResult{}, err
	}

	key := cacheKey(realEstateCacheKind, input)
	if cached, ok := loadCached[domain.RealEstateResult](ctx, s.cache, key); ok {
		return cached, nil
	}

	result := resolved.Analyze()

	storeCached(ctx, s.cache, key, result)

	return result, nil
}
