package review

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/authz"
	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/rating"
)

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type UpdateReview struct {
	repo       domain.Repository
	recomputer rating.Recomputer
	cache      CacheInvalidator
}

func NewUpdateReview(repo domain.Repository, rc rating.Recomputer, cache CacheInvalidator) *UpdateReview {
	return &UpdateReview{repo: repo, recomputer: rc, cache: cache}
}

func (uc *UpdateReview) Execute(ctx context.Context, reviewID uint, caller authz.Caller, in UpdateReviewInput) (*models.Review, error) {

	r, err := uc.repo.GetReview(ctx, reviewID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}

	if !authz.CanUpdateReview(caller, r.ClientID) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "rating must be between 1 and 5")
		}
		r.Rating = *in.Rating
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}

	if err := uc.repo.SaveReview(ctx, r); err != nil {
		return nil, err
	}

	if err := uc.recomputer.Recompute(ctx, r.BarberID); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)

	return r, nil
}
