package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/cache"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/rating"
)

type AdminHandler struct {
	db         *gorm.DB
	recomputer rating.Recomputer
	cache      *cache.Directory
	audit      *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, rc rating.Recomputer, dir *cache.Directory, auditD *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, recomputer: rc, cache: dir, audit: auditD}
}

func (h *AdminHandler) require(c *gin.Context) (authz.Caller, bool) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleAdmin) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return authz.Caller{}, false
	}
	return caller, true
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (h *AdminHandler) ListUsers(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}

	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "")
		return
	}
	httpresp.List(c, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "user not found")
		return
	}
	httpresp.OK(c, user)
}

type adminUpdateUserRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "user not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "")
		return
	}
	httpresp.OK(c, user)
}

// DeleteUser hard-deletes an account with cascading cleanup of every
// dependent record, then recomputes ratings for barbers the user had
// reviewed.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller, ok := h.require(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "user not found")
		return
	}

	var reviewedBarbers []uint
	h.db.Model(&models.Review{}).
		Distinct("barber_id").
		Where("client_id = ?", user.ID).
		Pluck("barber_id", &reviewedBarbers)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", user.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", user.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		var barber models.Barber
		if err := tx.Where("user_id = ?", user.ID).First(&barber).Error; err == nil {
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Service{}).Error; err != nil {
				return err
			}
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Availability{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&barber).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_user", "")
		return
	}

	for _, barberID := range reviewedBarbers {
		if err := h.recomputer.Recompute(c.Request.Context(), barberID); err != nil {
			httperr.Internal(c, "failed_to_recompute_rating", "")
			return
		}
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{"deleted": user.ID})
}

// --------------------------------------------------
// Barbershops
// --------------------------------------------------

func (h *AdminHandler) ListBarbershops(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}

	var barbers []models.Barber
	if err := h.db.Preload("User").Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "")
		return
	}
	httpresp.List(c, barbers)
}

type shopStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateBarbershopStatus(c *gin.Context) {
	caller, ok := h.require(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req shopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}
	if req.Status != models.BarberStatusApproved && req.Status != models.BarberStatusRejected {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "status must be approved or rejected")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "barbershop not found")
		return
	}

	barber.Status = req.Status
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_status", "")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "barbershop_status_changed",
		Entity:   "barber",
		EntityID: &barber.ID,
		Metadata: map[string]string{"status": barber.Status},
	})

	httpresp.OK(c, barber)
}

// --------------------------------------------------
// Bookings / reviews / audit trail
// --------------------------------------------------

func (h *AdminHandler) ListBookings(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}

	var bookings []models.Booking
	if err := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "")
		return
	}
	httpresp.List(c, bookings)
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	caller, ok := h.require(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var review models.Review
	if err := h.db.First(&review, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "review not found")
		return
	}

	if err := h.db.Delete(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_review", "")
		return
	}
	if err := h.recomputer.Recompute(c.Request.Context(), review.BarberID); err != nil {
		httperr.Internal(c, "failed_to_recompute_rating", "")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &review.ID,
	})

	httpresp.OK(c, gin.H{"deleted": review.ID})
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	if _, ok := h.require(c); !ok {
		return
	}

	var logs []models.AuditLog
	if err := h.db.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "")
		return
	}
	httpresp.List(c, logs)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid id")
		return 0, false
	}
	return uint(id), true
}
