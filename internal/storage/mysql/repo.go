package mysql

import (
	"context"
	"database/sql"

	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

// Repo bundles the read-only repositories over a single *sql.DB. This service
// never writes; every mutation belongs to the surrounding platform.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotelWithRooms(ctx context.Context, hotelID int64) (domain.HotelWithRooms, error) {
	var hw domain.HotelWithRooms
	row := r.db.QueryRowContext(ctx, getHotelSQL, hotelID)
	if err := row.Scan(&hw.ID, &hw.Name, &hw.Image, &hw.CreatedAt, &hw.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.HotelWithRooms{}, domain.ErrNotFound
		}
		return domain.HotelWithRooms{}, err
	}

	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return domain.HotelWithRooms{}, err
	}
	defer rows.Close()

	// Empty slice, not nil: a hotel without rooms serializes as "Rooms": [].
	hw.Rooms = []domain.Room{}
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return domain.HotelWithRooms{}, err
		}
		hw.Rooms = append(hw.Rooms, rm)
	}
	return hw, rows.Err()
}

func (r *Repo) FindEnrollmentByUserID(ctx context.Context, userID int64) (domain.Enrollment, error) {
	var e domain.Enrollment
	row := r.db.QueryRowContext(ctx, findEnrollmentSQL, userID)
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Enrollment{}, domain.ErrNotFound
		}
		return domain.Enrollment{}, err
	}
	return e, nil
}

func (r *Repo) FindTicketByEnrollmentID(ctx context.Context, enrollmentID int64) (domain.Ticket, error) {
	var (
		t      domain.Ticket
		status string
	)
	row := r.db.QueryRowContext(ctx, findTicketSQL, enrollmentID)
	if err := row.Scan(
		&t.ID,
		&t.EnrollmentID,
		&status,
		&t.Type.ID,
		&t.Type.Name,
		&t.Type.Price,
		&t.Type.IsRemote,
		&t.Type.IncludesHotel,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Ticket{}, domain.ErrNotFound
		}
		return domain.Ticket{}, err
	}
	t.Status = domain.TicketStatus(status)
	return t, nil
}

func (r *Repo) FindSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	var s domain.Session
	row := r.db.QueryRowContext(ctx, findSessionSQL, token)
	if err := row.Scan(&s.ID, &s.UserID, &s.Token); err != nil {
		if err == sql.ErrNoRows {
			return domain.Session{}, domain.ErrNotFound
		}
		return domain.Session{}, err
	}
	return s, nil
}
