package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// Enrollment is a user's registration record for the event. The surrounding
// platform guarantees at most one enrollment per user.
type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketType classifies a ticket: attendance mode (remote vs. in person) and
// whether the ticket class grants hotel accommodation.
type TicketType struct {
	ID            int64
	Name          string
	Price         int64 // cents
	IsRemote      bool
	IncludesHotel bool
}

type Ticket struct {
	ID           int64
	EnrollmentID int64
	Status       TicketStatus
	Type         TicketType
}

// Session is an issued sign-in token. Issuance belongs to the platform's auth
// service; this API only looks sessions up.
type Session struct {
	ID     int64
	UserID int64
	Token  string
}
