package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/payments"
)

type PaymentHandler struct {
	db     *gorm.DB
	client *payments.Client
}

func NewPaymentHandler(db *gorm.DB, client *payments.Client) *PaymentHandler {
	return &PaymentHandler{db: db, client: client}
}

type intentRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

type confirmRequest struct {
	PaymentID int `json:"payment_id" binding:"required"`
}

// CreateIntent relays a checkout request for the caller's own booking,
// priced from the booking's snapshot, never from the live service.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleClient) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	if h.client == nil {
		httperr.Write(c, 503, httperr.CodeUnavailable, "payments are not configured")
		return
	}

	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	var b models.Booking
	if err := h.db.Preload("Service").First(&b, req.BookingID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "booking not found")
		return
	}
	if b.ClientID != caller.ID {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	intent, err := h.client.CreateIntent(c.Request.Context(), b.ID, b.Service.Name, b.Price)
	if err != nil {
		httperr.Internal(c, "payment_provider_error", "")
		return
	}

	httpresp.OK(c, intent)
}

// Confirm is the provider-callback endpoint. The callback body only carries
// a payment id; status and booking reference are fetched back from the
// provider, so a forged callback cannot flip a booking to paid. Only the
// payment status moves; the booking lifecycle is untouched.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	if h.client == nil {
		httperr.Write(c, 503, httperr.CodeUnavailable, "payments are not configured")
		return
	}

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	v, err := h.client.VerifyPayment(c.Request.Context(), req.PaymentID)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "payment could not be verified")
		return
	}

	paymentStatus, settled := paymentStatusFor(v.Status)
	if !settled {
		// In-flight provider statuses are acknowledged without a write.
		httpresp.OK(c, gin.H{"booking_id": v.BookingID, "payment_status": models.PaymentPending})
		return
	}

	var b models.Booking
	if err := h.db.First(&b, v.BookingID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "booking not found")
		return
	}

	b.PaymentStatus = paymentStatus
	b.PaymentRef = v.Reference

	if err := h.db.Save(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "")
		return
	}

	httpresp.OK(c, gin.H{"booking_id": b.ID, "payment_status": b.PaymentStatus})
}

// paymentStatusFor maps a provider payment status onto the booking's payment
// state. The second return is false while the provider has not settled.
func paymentStatusFor(providerStatus string) (string, bool) {
	switch providerStatus {
	case "approved":
		return models.PaymentPaid, true
	case "rejected", "cancelled", "refunded", "charged_back":
		return models.PaymentFailed, true
	default:
		return "", false
	}
}
