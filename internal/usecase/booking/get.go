package booking

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/authz"
	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, bookingID uint, caller authz.Caller) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}

	refs := authz.BookingRefs{ClientID: b.ClientID, BarberOwnerID: b.Barber.UserID}
	if !authz.CanAccessBooking(caller, refs) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return b, nil
}
