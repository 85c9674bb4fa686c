package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	ucReview "github.com/barberhub/barberhub-api/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucReview.CreateReview
	update *ucReview.UpdateReview
	remove *ucReview.DeleteReview
	list   *ucReview.ListBarberReviews
}

func NewReviewHandler(
	create *ucReview.CreateReview,
	update *ucReview.UpdateReview,
	remove *ucReview.DeleteReview,
	list *ucReview.ListBarberReviews,
) *ReviewHandler {
	return &ReviewHandler{create: create, update: update, remove: remove, list: list}
}

type createReviewRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleClient) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		ClientID:  caller.ID,
		BarberID:  req.BarberID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *ReviewHandler) ListForBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid barber id")
		return
	}

	reviews, err := h.list.Execute(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthorized, "")
		return
	}

	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	r, err := h.update.Execute(c.Request.Context(), id, caller, ucReview.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthorized, "")
		return
	}

	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, caller); err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

func reviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid review id")
		return 0, false
	}
	return uint(id), true
}
