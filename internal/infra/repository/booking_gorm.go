package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

// Statuses that hold a slot for conflict purposes.
var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
	string(domain.StatusRescheduled),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BookingGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).Preload("User").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBarberByUser(ctx context.Context, userID uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) GetAvailability(ctx context.Context, barberID uint) (*models.Availability, error) {
	var av models.Availability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&av).Error; err != nil {
		return nil, err
	}
	return &av, nil
}

// --------------------------------------------------
// Create (conflict check + insert in one transaction)
// --------------------------------------------------

// CreateBooking row-locks any booking already holding the slot before
// inserting. Row locks cannot serialize two inserts into an empty slot, so
// the partial unique index on (barber_id, date) for active statuses is the
// backstop: the losing insert fails with a unique violation, reported as
// the same conflict.
func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var held []uint
		if err := lockActiveSlot(tx, b.BarberID, b.Date).Pluck("id", &held).Error; err != nil {
			return err
		}
		if len(held) > 0 {
			return errSlotTaken
		}

		if err := tx.Create(b).Error; err != nil {
			if isUniqueViolation(err) {
				return errSlotTaken
			}
			return err
		}
		return nil
	})
}

var errSlotTaken = httperr.ErrBusinessMsg(httperr.CodeConflict, "this time slot is already booked")

// lockActiveSlot selects, and locks, the active booking rows holding the
// given slot. This must stay a plain row query: Postgres rejects FOR UPDATE
// combined with aggregates.
func lockActiveSlot(tx *gorm.DB, barberID uint, at time.Time) *gorm.DB {
	return tx.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, at, activeStatuses,
		).
		Limit(1)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// State changes
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Barber.User").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Conflict queries
// --------------------------------------------------

func (r *BookingGormRepository) HasSlotConflict(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barber_id = ? AND date = ? AND status IN ?", barberID, at, activeStatuses)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListActiveBetween(ctx context.Context, barberID uint, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status IN ? AND date >= ? AND date < ?",
			barberID, activeStatuses, from, to,
		).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListForClient(ctx context.Context, clientID uint, f domain.ListFilter, now time.Time) ([]models.Booking, error) {
	return r.list(ctx, "client_id = ?", clientID, f, now)
}

func (r *BookingGormRepository) ListForBarber(ctx context.Context, barberID uint, f domain.ListFilter, now time.Time) ([]models.Booking, error) {
	return r.list(ctx, "barber_id = ?", barberID, f, now)
}

func (r *BookingGormRepository) list(ctx context.Context, ownerCond string, ownerID uint, f domain.ListFilter, now time.Time) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(ownerCond, ownerID)

	switch f {
	case domain.FilterUpcoming:
		q = q.Where("date >= ? AND status IN ?", now,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)})
	case domain.FilterPast:
		q = q.Where("date < ? AND status IN ?", now,
			[]string{
				string(domain.StatusConfirmed),
				string(domain.StatusCompleted),
				string(domain.StatusCancelled),
				string(domain.StatusRescheduled),
			})
	case domain.FilterCancelled, domain.FilterCompleted, domain.FilterRescheduled:
		q = q.Where("status = ?", string(f))
	}

	var out []models.Booking
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
