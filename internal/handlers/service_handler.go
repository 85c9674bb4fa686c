package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type serviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Active      *bool   `json:"active"`
}

func (r serviceRequest) validate() (string, bool) {
	if r.Price < 0 {
		return "price cannot be negative", false
	}
	if r.DurationMin <= 0 {
		return "duration must be a positive number of minutes", false
	}
	return "", true
}

// profileOf resolves the caller's barber profile or fails the request.
func (h *ServiceHandler) profileOf(c *gin.Context) (*models.Barber, bool) {
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

func (h *ServiceHandler) List(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}
	if msg, ok := req.validate(); !ok {
		httperr.BadRequest(c, httperr.CodeInvalidInput, msg)
		return
	}

	svc := models.Service{
		BarberID:    barber.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	svc, ok := h.loadOwned(c, barber)
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}
	if msg, ok := req.validate(); !ok {
		httperr.BadRequest(c, httperr.CodeInvalidInput, msg)
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.DurationMin = req.DurationMin
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	barber, ok := h.profileOf(c)
	if !ok {
		return
	}

	svc, ok := h.loadOwned(c, barber)
	if !ok {
		return
	}

	if err := h.db.Delete(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "")
		return
	}

	httpresp.OK(c, gin.H{"deleted": svc.ID})
}

func (h *ServiceHandler) loadOwned(c *gin.Context, barber *models.Barber) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid service id")
		return nil, false
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "service not found")
		return nil, false
	}

	if !authz.CanManageService(barber.ID, svc.BarberID) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return nil, false
	}
	return &svc, true
}
