package review

import (
	"context"

	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type ListBarberReviews struct {
	repo domain.Repository
}

func NewListBarberReviews(repo domain.Repository) *ListBarberReviews {
	return &ListBarberReviews{repo: repo}
}

func (uc *ListBarberReviews) Execute(ctx context.Context, barberID uint) ([]models.Review, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "barber not found")
	}

	return uc.repo.ListByBarber(ctx, barberID)
}
