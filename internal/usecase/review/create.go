package review

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/audit"
	booking "github.com/barberhub/barberhub-api/internal/domain/booking"
	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/rating"
)

type CreateReviewInput struct {
	ClientID  uint
	BarberID  uint
	BookingID uint
	Rating    int
	Comment   string
}

type CreateReview struct {
	repo       domain.Repository
	recomputer rating.Recomputer
	cache      CacheInvalidator
	audit      AuditSink
}

func NewCreateReview(repo domain.Repository, rc rating.Recomputer, cache CacheInvalidator, audit AuditSink) *CreateReview {
	return &CreateReview{repo: repo, recomputer: rc, cache: cache, audit: audit}
}

// Execute enforces the one-review-per-completed-booking rule, then
// synchronously recomputes the barber's aggregate rating.
func (uc *CreateReview) Execute(ctx context.Context, in CreateReviewInput) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "rating must be between 1 and 5")
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}
	if b.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if b.BarberID != in.BarberID {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "booking does not belong to this barber")
	}

	if booking.Status(b.Status) != booking.StatusCompleted {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidState, "only completed bookings can be reviewed")
	}

	taken, err := uc.repo.HasReviewForBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusinessMsg(httperr.CodeConflict, "this booking has already been reviewed")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "barber not found")
	}

	r := &models.Review{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		BookingID: in.BookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	if err := uc.recomputer.Recompute(ctx, in.BarberID); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return r, nil
}
