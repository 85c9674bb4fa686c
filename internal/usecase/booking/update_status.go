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

type UpdateStatus struct {
	repo   domain.Repository
	audit  AuditSink
	notify Notifier
}

func NewUpdateStatus(repo domain.Repository, audit AuditSink, notify Notifier) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit, notify: notify}
}

func (uc *UpdateStatus) Execute(ctx context.Context, bookingID uint, newStatus string, caller authz.Caller) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}

	refs := authz.BookingRefs{ClientID: b.ClientID, BarberOwnerID: b.Barber.UserID}
	if !authz.CanManageBookingStatus(caller, refs) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	next := domain.Status(newStatus)
	if err := domain.CanTransition(domain.Status(b.Status), next); err != nil {
		return nil, err
	}

	now := time.Now()
	b.Status = string(next)
	switch next {
	case domain.StatusCancelled:
		b.CancelledAt = &now
	case domain.StatusCompleted:
		b.CompletedAt = &now
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"status": b.Status},
	})
	uc.notify.BookingStatusChanged(b.Client.Email, b)

	return b, nil
}
