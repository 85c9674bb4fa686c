package review

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/authz"
	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/rating"
)

type DeleteReview struct {
	repo       domain.Repository
	recomputer rating.Recomputer
	cache      CacheInvalidator
	audit      AuditSink
}

func NewDeleteReview(repo domain.Repository, rc rating.Recomputer, cache CacheInvalidator, audit AuditSink) *DeleteReview {
	return &DeleteReview{repo: repo, recomputer: rc, cache: cache, audit: audit}
}

func (uc *DeleteReview) Execute(ctx context.Context, reviewID uint, caller authz.Caller) error {

	r, err := uc.repo.GetReview(ctx, reviewID)
	if err != nil {
		return httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}

	if !authz.CanDeleteReview(caller, r.ClientID) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := uc.repo.DeleteReview(ctx, r); err != nil {
		return err
	}

	if err := uc.recomputer.Recompute(ctx, r.BarberID); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return nil
}
