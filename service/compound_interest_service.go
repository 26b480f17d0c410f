package service

import (
	"context"

	"invest-agent/domain"
	"invest-agent/repository"
)

const compoundInterestCacheKind = "compound_interest"

type CompoundInterestService struct {
	cache repository.CacheRepository
}

// NewCompoundInterestService creates the projector service. cache may be nil.
func NewCompoundInterestService(cache repository.CacheRepository) *CompoundInterestService {
	return &CompoundInterestService{cache: cache}
}

// Project returns the yearly projection for input, served from the cache
// when the same request was computed before.
func (s *CompoundInterestService) Project(
	ctx context.Context,
	input domain.CompoundInterestRequest,
) (domain.CompoundInterestResult, error) {

	// Validar entrada antes de tocar la caché
	if err := ValidateCompoundInterestRequest(input); err != nil {
		return domain.CompoundInterestResult{}, err
	}

	key := cacheKey(compoundInterestCacheKind, input)
	if cached, ok := loadCached[domain.CompoundInterestResult](ctx, s.cache, key); ok {
		return cached, nil
	}

	years, err := ProjectCompoundInterest(input)
	if err != nil {
		return domain.CompoundInterestResult{}, err
	}
	result := domain.CompoundInterestResult{Years: years}

	storeCached(ctx, s.cache, key, result)

	return result, nil
}
