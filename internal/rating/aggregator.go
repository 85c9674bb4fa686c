// Package rating keeps Barber.AverageRating/NumReviews consistent with the
// review set. Recompute is always a full recomputation, invoked explicitly
// after every review mutation rather than hidden in a storage hook.
package rating

import (
	"context"

	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/models"
)

type Recomputer interface {
	Recompute(ctx context.Context, barberID uint) error
}

type Aggregator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

func (a *Aggregator) Recompute(ctx context.Context, barberID uint) error {
	var agg struct {
		Avg float64
		Cnt int64
	}

	if err := a.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("barber_id = ?", barberID).
		Scan(&agg).Error; err != nil {
		return err
	}

	return a.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Updates(map[string]any{
			"average_rating": agg.Avg,
			"num_reviews":    agg.Cnt,
		}).Error
}
