package domain

import "context"

type HotelRepository interface {
	// ListHotels returns every hotel in storage order. An empty catalog is
	// a valid result here; policy lives in the service layer.
	ListHotels(ctx context.Context) ([]Hotel, error)
	// GetHotelWithRooms returns the hotel and its full set of rooms, or
	// ErrNotFound when no such hotel exists.
	GetHotelWithRooms(ctx context.Context, hotelID int64) (HotelWithRooms, error)
}

type EnrollmentRepository interface {
	FindEnrollmentByUserID(ctx context.Context, userID int64) (Enrollment, error)
}

type TicketRepository interface {
	// FindTicketByEnrollmentID returns the enrollment's ticket with its
	// type embedded, or ErrNotFound.
	FindTicketByEnrollmentID(ctx context.Context, enrollmentID int64) (Ticket, error)
}

type SessionRepository interface {
	FindSessionByToken(ctx context.Context, token string) (Session, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
