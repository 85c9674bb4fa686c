package booking

import (
	"context"
	"time"

	"github.com/barberhub/barberhub-api/internal/models"
)

// ListFilter selects a booking subset relative to now.
type ListFilter string

const (
	FilterAll         ListFilter = ""
	FilterUpcoming    ListFilter = "upcoming"
	FilterPast        ListFilter = "past"
	FilterCancelled   ListFilter = "cancelled"
	FilterCompleted   ListFilter = "completed"
	FilterRescheduled ListFilter = "rescheduled"
)

func ValidFilter(f ListFilter) bool {
	switch f {
	case FilterAll, FilterUpcoming, FilterPast, FilterCancelled, FilterCompleted, FilterRescheduled:
		return true
	}
	return false
}

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetBarberByUser(ctx context.Context, userID uint) (*models.Barber, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetAvailability(ctx context.Context, barberID uint) (*models.Availability, error)

	// CreateBooking performs the exact-slot conflict check and the insert
	// atomically, so two concurrent creations for the same barber and
	// timestamp cannot both succeed. Returns a conflict business error when
	// the slot is held by an active booking.
	CreateBooking(ctx context.Context, b *models.Booking) error

	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error

	// HasSlotConflict reports an active booking at exactly `at` for the
	// barber, excluding excludeID (0 to exclude none).
	HasSlotConflict(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error)

	// ListActiveBetween returns active bookings whose date falls in
	// [from, to); used by the strict interval-overlap mode.
	ListActiveBetween(ctx context.Context, barberID uint, from, to time.Time) ([]models.Booking, error)

	ListForClient(ctx context.Context, clientID uint, f ListFilter, now time.Time) ([]models.Booking, error)
	ListForBarber(ctx context.Context, barberID uint, f ListFilter, now time.Time) ([]models.Booking, error)
}
