package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// RateCache is a read-through cache for active rates. The counter reads the
// active rate on every quote and sale, so lookups dominate writes by orders
// of magnitude.
type RateCache interface {
	// Get returns the cached active rate or nil on a miss
	Get(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) (*catalog.RateMaster, error)

	// Set stores the active rate
	Set(ctx context.Context, rate *catalog.RateMaster) error

	// Invalidate drops the cached rate for a metal and purity
	Invalidate(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) error
}

// RateService handles metal rate publication and lookup
type RateService struct {
	rateRepo catalog.RateMasterRepository
	cache    RateCache
}

// NewRateService creates a new RateService. The cache is optional.
func NewRateService(rateRepo catalog.RateMasterRepository, cache RateCache) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		cache:    cache,
	}
}

// Publish activates a new rate and retires the previous active rate for the
// same metal and purity. History is retained.
func (s *RateService) Publish(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req PublishRateRequest) (*RateResponse, error) {
	metal := catalog.MetalType(req.MetalType)
	rate, err := catalog.NewRateMaster(shopID, metal, req.Purity, req.PricePerGram)
	if err != nil {
		return nil, err
	}
	rate.CreatedBy = userID

	if err := s.rateRepo.RetireActiveRates(ctx, shopID, metal, req.Purity); err != nil {
		return nil, err
	}
	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}
	if s.cache != nil {
		// drop instead of overwrite so a failed write cannot pin a stale rate
		if err := s.cache.Invalidate(ctx, shopID, metal, req.Purity); err != nil {
			return nil, err
		}
	}
	resp := ToRateResponse(rate)
	return &resp, nil
}

// ActiveRate returns the single active rate for a metal and purity,
// consulting the cache first
func (s *RateService) ActiveRate(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) (*catalog.RateMaster, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, shopID, metal, purity)
		if err == nil && cached != nil {
			return cached, nil
		}
	}
	rate, err := s.rateRepo.FindActiveRate(ctx, shopID, metal, purity)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, rate) // cache failure never fails the lookup
	}
	return rate, nil
}

// GetActive returns the active rate as a response DTO
func (s *RateService) GetActive(ctx context.Context, shopID uuid.UUID, metal, purity string) (*RateResponse, error) {
	rate, err := s.ActiveRate(ctx, shopID, catalog.MetalType(metal), purity)
	if err != nil {
		return nil, err
	}
	resp := ToRateResponse(rate)
	return &resp, nil
}

// History lists rates for a metal and purity, newest first
func (s *RateService) History(ctx context.Context, shopID uuid.UUID, metal, purity string, filter shared.Filter) ([]RateResponse, error) {
	rates, err := s.rateRepo.FindHistoryForShop(ctx, shopID, catalog.MetalType(metal), purity, filter)
	if err != nil {
		return nil, err
	}
	items := make([]RateResponse, 0, len(rates))
	for idx := range rates {
		items = append(items, ToRateResponse(&rates[idx]))
	}
	return items, nil
}
