package app

import (
	"context"

	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

// EligibilityChecker decides whether a user may view hotel data: the user
// needs an enrollment with a PAID, in-person ticket that includes hotel
// accommodation.
type EligibilityChecker struct {
	enrollments domain.EnrollmentRepository
	tickets     domain.TicketRepository
}

func NewEligibilityChecker(e domain.EnrollmentRepository, t domain.TicketRepository) *EligibilityChecker {
	return &EligibilityChecker{enrollments: e, tickets: t}
}

// Verify short-circuits in a fixed order; the order decides which error the
// client sees. A missing enrollment or ticket is ErrNotFound; a ticket that
// fails any part of the paid/in-person/includes-hotel conjunction collapses
// to a single ErrPaymentRequired.
func (c *EligibilityChecker) Verify(ctx context.Context, userID int64) error {
	enr, err := c.enrollments.FindEnrollmentByUserID(ctx, userID)
	if err != nil {
		return err
	}
	t, err := c.tickets.FindTicketByEnrollmentID(ctx, enr.ID)
	if err != nil {
		return err
	}
	if t.Status != domain.TicketPaid || t.Type.IsRemote || !t.Type.IncludesHotel {
		return domain.ErrPaymentRequired
	}
	return nil
}
