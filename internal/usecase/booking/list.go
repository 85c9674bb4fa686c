package booking

import (
	"context"
	"time"

	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute resolves the caller to either side of the marketplace: clients
// see bookings they made, barbers see bookings against their profile.
func (uc *ListUserBookings) Execute(ctx context.Context, userID uint, role string, f domain.ListFilter) ([]models.Booking, error) {

	if !domain.ValidFilter(f) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "unknown status filter")
	}

	now := time.Now()

	switch role {
	case models.RoleClient:
		return uc.repo.ListForClient(ctx, userID, f, now)
	case models.RoleBarber:
		barber, err := uc.repo.GetBarberByUser(ctx, userID)
		if err != nil {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "barber profile not found")
		}
		return uc.repo.ListForBarber(ctx, barber.ID, f, now)
	default:
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "invalid role for booking lookup")
	}
}
