package booking

import (
	"context"
	"time"

	"github.com/barberhub/barberhub-api/internal/audit"
	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type Reschedule struct {
	repo  domain.Repository
	audit AuditSink
}

func NewReschedule(repo domain.Repository, audit AuditSink) *Reschedule {
	return &Reschedule{repo: repo, audit: audit}
}

// Execute moves a booking to a new slot. Only the original client may call;
// the freed slot becomes bookable again because the conflict rule matches
// on the current date only.
func (uc *Reschedule) Execute(ctx context.Context, bookingID, clientID uint, newDate time.Time) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}

	if b.ClientID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := domain.CanReschedule(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	if !newDate.After(time.Now()) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "new date must be in the future")
	}

	conflict, err := uc.repo.HasSlotConflict(ctx, b.BarberID, newDate, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.ErrBusinessMsg(httperr.CodeConflict, "the new time slot is already booked")
	}

	b.Date = newDate
	b.Status = string(domain.StatusRescheduled)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
