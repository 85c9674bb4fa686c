package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ReviewGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ReviewGormRepository) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) HasReviewForBooking(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) SaveReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewGormRepository) DeleteReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Delete(rv).Error
}

func (r *ReviewGormRepository) ListByBarber(ctx context.Context, barberID uint) ([]models.Review, error) {
	var out []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
