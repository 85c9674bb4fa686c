package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barberhub-api/internal/authz"
	domain "github.com/barberhub/barberhub-api/internal/domain/booking"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	ucBooking "github.com/barberhub/barberhub-api/internal/usecase/booking"
)

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	list       *ucBooking.ListUserBookings
	get        *ucBooking.GetBooking
	updateStat *ucBooking.UpdateStatus
	reschedule *ucBooking.Reschedule
	cancel     *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	list *ucBooking.ListUserBookings,
	get *ucBooking.GetBooking,
	updateStat *ucBooking.UpdateStatus,
	reschedule *ucBooking.Reschedule,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		list:       list,
		get:        get,
		updateStat: updateStat,
		reschedule: reschedule,
		cancel:     cancel,
	}
}

// --------- Requests ---------

type createBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type rescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleClient) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	at, ok := parseDateTime(req.Date, req.Time)
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid date or time")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:  caller.ID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      at,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthorized, "")
		return
	}

	filter := domain.ListFilter(c.Query("status"))
	bookings, err := h.list.Execute(c.Request.Context(), caller.ID, caller.Role, filter)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthorized, "")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id, caller)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleBarber, models.RoleAdmin) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	b, err := h.updateStat.Execute(c.Request.Context(), id, req.Status, caller)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleClient) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	at, ok := parseDateTime(req.Date, req.Time)
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid date or time")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), id, caller.ID, at)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthorized, "")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id, caller)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, b)
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}
