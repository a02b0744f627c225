package app

import (
	"context"
	"fmt"
	"time"

	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

// HotelQueryService answers the two catalog reads, each gated by the
// eligibility check. The hotel catalog is immutable from this service's
// perspective, so reads go through a best-effort cache; eligibility is
// evaluated on every call and never cached.
type HotelQueryService struct {
	eligibility *EligibilityChecker
	hotels      domain.HotelRepository
	cache       domain.Cache
	cacheTTL    time.Duration
}

func NewHotelQueryService(e *EligibilityChecker, h domain.HotelRepository, c domain.Cache, ttl time.Duration) *HotelQueryService {
	return &HotelQueryService{eligibility: e, hotels: h, cache: c, cacheTTL: ttl}
}

func (s *HotelQueryService) GetHotels(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if err := s.eligibility.Verify(ctx, userID); err != nil {
		return nil, err
	}

	const key = "hotels:all"
	var cached []domain.Hotel
	if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	hotels, err := s.hotels.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	// An empty catalog is surfaced as not-found, not as an empty 200.
	if len(hotels) == 0 {
		return nil, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, hotels, int(s.cacheTTL.Seconds()))
	return hotels, nil
}

func (s *HotelQueryService) GetHotelByID(ctx context.Context, userID, hotelID int64) (domain.HotelWithRooms, error) {
	if hotelID < 1 {
		return domain.HotelWithRooms{}, domain.ErrValidation
	}
	// Authorization is keyed by the user, never by the hotel id.
	if err := s.eligibility.Verify(ctx, userID); err != nil {
		return domain.HotelWithRooms{}, err
	}

	key := fmt.Sprintf("hotel:%d", hotelID)
	var cached domain.HotelWithRooms
	if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	h, err := s.hotels.GetHotelWithRooms(ctx, hotelID)
	if err != nil {
		return domain.HotelWithRooms{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}
