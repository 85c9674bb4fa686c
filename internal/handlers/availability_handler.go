package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/timeutil"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

type availabilityRequest struct {
	Schedule     models.WeekSchedule  `json:"schedule" binding:"required"`
	SpecialDates []models.SpecialDate `json:"special_dates"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	var av models.Availability
	if err := h.db.Where("barber_id = ?", barber.ID).First(&av).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "availability not set")
		return
	}

	httpresp.OK(c, av)
}

// Update replaces the whole weekly schedule; partial edits are not supported.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	for day, blocks := range req.Schedule {
		if !weekdays[day] {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "unknown weekday: "+day)
			return
		}
		for _, b := range blocks {
			if !timeutil.ValidBlock(b) {
				httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid work block on "+day)
				return
			}
		}
	}

	var av models.Availability
	err := h.db.Where("barber_id = ?", barber.ID).First(&av).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_load_availability", "")
		return
	}

	av.BarberID = barber.ID
	av.Schedule = req.Schedule
	av.SpecialDates = req.SpecialDates

	if err := h.db.Save(&av).Error; err != nil {
		httperr.Internal(c, "failed_to_save_availability", "")
		return
	}

	httpresp.OK(c, av)
}

func (h *AvailabilityHandler) profileOf(c *gin.Context) (*models.Barber, bool) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleBarber) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.Where("user_id = ?", caller.ID).First(&barber).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "barber profile not found")
		return nil, false
	}
	return &barber, true
}
