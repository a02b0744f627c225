package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucas-palmeida/drivent-3/internal/app"
	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

// ---- fakes ----

type fakeHotels struct {
	list   []domain.Hotel
	detail domain.HotelWithRooms
	err    error
	calls  int
}

func (f *fakeHotels) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeHotels) GetHotelWithRooms(ctx context.Context, hotelID int64) (domain.HotelWithRooms, error) {
	f.calls++
	if f.err != nil {
		return domain.HotelWithRooms{}, f.err
	}
	return f.detail, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Hotel:
		*d = v.([]domain.Hotel)
	case *domain.HotelWithRooms:
		*d = v.(domain.HotelWithRooms)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// brokenCache claims a hit but reports a decode failure, like a corrupt
// redis entry would.
type brokenCache struct{ fakeCache }

func (c *brokenCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	return true, errors.New("decode corrupt entry")
}

func eligibleChecker() (*app.EligibilityChecker, *fakeEnrollments, *fakeTickets) {
	enr := &fakeEnrollments{enr: domain.Enrollment{ID: 10, UserID: 7}}
	tk := &fakeTickets{ticket: paidHotelTicket()}
	return app.NewEligibilityChecker(enr, tk), enr, tk
}

func newService(hotels *fakeHotels) (*app.HotelQueryService, *fakeEnrollments) {
	checker, enr, _ := eligibleChecker()
	return app.NewHotelQueryService(checker, hotels, &fakeCache{}, 10*time.Minute), enr
}

// ---- tests ----

func TestGetHotels_IneligiblePropagates(t *testing.T) {
	enr := &fakeEnrollments{err: domain.ErrNotFound}
	checker := app.NewEligibilityChecker(enr, &fakeTickets{})
	hotels := &fakeHotels{list: []domain.Hotel{{ID: 1}}}
	q := app.NewHotelQueryService(checker, hotels, &fakeCache{}, time.Minute)

	_, err := q.GetHotels(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if hotels.calls != 0 {
		t.Fatalf("catalog must not be read for an ineligible user")
	}
}

func TestGetHotels_EmptyCatalogIsNotFound(t *testing.T) {
	q, _ := newService(&fakeHotels{})

	_, err := q.GetHotels(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for empty catalog, got %v", err)
	}
}

func TestGetHotels_ReturnsCatalogAndCaches(t *testing.T) {
	hotels := &fakeHotels{list: []domain.Hotel{
		{ID: 7, Name: "Driven Resort", Image: "https://img.example/driven.png"},
	}}
	q, _ := newService(hotels)

	out, err := q.GetHotels(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ID != 7 || out[0].Name != "Driven Resort" {
		t.Fatalf("unexpected hotels: %+v", out)
	}

	// Second read must come from the cache, not the repository.
	hotels.list = []domain.Hotel{{ID: 99, Name: "SHOULD NOT SEE THIS"}}
	out2, err := q.GetHotels(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out2[0].ID != 7 {
		t.Fatalf("expected cached catalog, got %+v", out2)
	}
}

func TestCacheGetErrorFallsThroughToStorage(t *testing.T) {
	hotels := &fakeHotels{
		list:   []domain.Hotel{{ID: 7, Name: "Driven Resort"}},
		detail: domain.HotelWithRooms{Hotel: domain.Hotel{ID: 7, Name: "Driven Resort"}},
	}
	checker, _, _ := eligibleChecker()
	q := app.NewHotelQueryService(checker, hotels, &brokenCache{}, time.Minute)

	out, err := q.GetHotels(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ID != 7 {
		t.Fatalf("want the stored catalog, got %+v", out)
	}

	detail, err := q.GetHotelByID(context.Background(), 7, 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if detail.ID != 7 {
		t.Fatalf("want the stored hotel, got %+v", detail)
	}
	if hotels.calls != 2 {
		t.Fatalf("storage reads = %d, want 2", hotels.calls)
	}
}

func TestGetHotels_EligibilityEvaluatedOnEveryCall(t *testing.T) {
	hotels := &fakeHotels{list: []domain.Hotel{{ID: 7}}}
	q, enr := newService(hotels)

	if _, err := q.GetHotels(context.Background(), 7); err != nil {
		t.Fatalf("err: %v", err)
	}
	// Revoke the enrollment; the cached catalog must not leak past auth.
	enr.err = domain.ErrNotFound
	if _, err := q.GetHotels(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound after revocation, got %v", err)
	}
}

func TestGetHotelByID_InvalidID(t *testing.T) {
	hotels := &fakeHotels{}
	checker, enr, _ := eligibleChecker()
	q := app.NewHotelQueryService(checker, hotels, &fakeCache{}, time.Minute)

	for _, id := range []int64{0, -3} {
		_, err := q.GetHotelByID(context.Background(), 7, id)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("id=%d: want ErrValidation, got %v", id, err)
		}
	}
	if enr.calls != 0 || hotels.calls != 0 {
		t.Fatalf("validation must run before eligibility and storage")
	}
}

func TestGetHotelByID_UnknownHotel(t *testing.T) {
	q, _ := newService(&fakeHotels{err: domain.ErrNotFound})

	_, err := q.GetHotelByID(context.Background(), 7, 123)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetHotelByID_ReturnsHotelWithRooms(t *testing.T) {
	detail := domain.HotelWithRooms{
		Hotel: domain.Hotel{ID: 7, Name: "Driven Resort", Image: "https://img.example/driven.png"},
		Rooms: []domain.Room{{ID: 3, Name: "123", Capacity: 3, HotelID: 7}},
	}
	q, _ := newService(&fakeHotels{detail: detail})

	out, err := q.GetHotelByID(context.Background(), 7, 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.ID != 7 || len(out.Rooms) != 1 || out.Rooms[0].HotelID != 7 {
		t.Fatalf("unexpected detail: %+v", out)
	}
}
