package booking

import (
	"context"
	"time"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/authz"
	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  AuditSink
	notify Notifier
}

func NewCancelBooking(repo domain.Repository, audit AuditSink, notify Notifier) *CancelBooking {
	return &CancelBooking{repo: repo, audit: audit, notify: notify}
}

func (uc *CancelBooking) Execute(ctx context.Context, bookingID uint, caller authz.Caller) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}

	refs := authz.BookingRefs{ClientID: b.ClientID, BarberOwnerID: b.Barber.UserID}
	if !authz.CanAccessBooking(caller, refs) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	now := time.Now()
	b.Status = string(domain.StatusCancelled)
	b.CancelledAt = &now

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})
	uc.notify.BookingCancelled(b.Client.Email, b.Barber.User.Email, b)

	return b, nil
}
