package review

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/models"
)

type Repository interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	GetReview(ctx context.Context, id uint) (*models.Review, error)
	HasReviewForBooking(ctx context.Context, bookingID uint) (bool, error)

	CreateReview(ctx context.Context, r *models.Review) error
	SaveReview(ctx context.Context, r *models.Review) error
	DeleteReview(ctx context.Context, r *models.Review) error

	// ListByBarber returns reviews newest first.
	ListByBarber(ctx context.Context, barberID uint) ([]models.Review, error)
}
