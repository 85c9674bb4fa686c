package booking

import (
	"context"
	"time"

	"github.com/barberhub/barberhub-api/internal/audit"
	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/timeutil"
)

type CreateBookingInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Date      time.Time
	Notes     string
}

type CreateBooking struct {
	repo   domain.Repository
	audit  AuditSink
	notify Notifier

	// strict also rejects interval overlap and slots outside the barber's
	// availability. The default (false) keeps the historical exact-timestamp
	// rule, availability not consulted.
	strict bool
}

func NewCreateBooking(repo domain.Repository, audit AuditSink, notify Notifier, strict bool) *CreateBooking {
	return &CreateBooking{repo: repo, audit: audit, notify: notify, strict: strict}
}

func (uc *CreateBooking) Execute(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "barber not found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || svc.BarberID != in.BarberID {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "service not found or does not belong to this barber")
	}

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "client not found")
	}

	if !in.Date.After(time.Now()) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "booking date must be in the future")
	}

	if uc.strict {
		if err := uc.checkStrict(ctx, in, svc); err != nil {
			return nil, err
		}
	}

	b := &models.Booking{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,

		// Snapshot so later service edits do not alter this booking.
		DurationMin: svc.DurationMin,
		Price:       svc.Price,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: models.PaymentPending,
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})
	uc.notify.BookingCreated(client.Email, barber.User.Email, b)

	return b, nil
}

func (uc *CreateBooking) checkStrict(ctx context.Context, in CreateBookingInput, svc *models.Service) error {
	start := in.Date
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	av, err := uc.repo.GetAvailability(ctx, in.BarberID)
	if err != nil || !timeutil.WithinAvailability(av, start, end) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "slot outside barber availability")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := uc.repo.ListActiveBetween(ctx, in.BarberID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for _, other := range existing {
		otherEnd := other.Date.Add(time.Duration(other.DurationMin) * time.Minute)
		if timeutil.Overlaps(start, end, other.Date, otherEnd) {
			return httperr.ErrBusinessMsg(httperr.CodeConflict, "slot overlaps an existing booking")
		}
	}
	return nil
}
