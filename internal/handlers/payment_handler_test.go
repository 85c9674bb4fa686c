package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/barberhub/barberhub-api/internal/models"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		settled  bool
	}{
		{"approved", models.PaymentPaid, true},
		{"rejected", models.PaymentFailed, true},
		{"cancelled", models.PaymentFailed, true},
		{"refunded", models.PaymentFailed, true},
		{"charged_back", models.PaymentFailed, true},
		{"pending", "", false},
		{"in_process", "", false},
		{"authorized", "", false},
		{"", "", false},
		// The callback must never take the caller's word for the outcome,
		// so our own stored values are not valid provider statuses.
		{"paid", "", false},
		{"failed", "", false},
	}

	for _, tt := range tests {
		got, settled := paymentStatusFor(tt.provider)
		assert.Equal(t, tt.want, got, tt.provider)
		assert.Equal(t, tt.settled, settled, tt.provider)
	}
}

// Without a configured provider there is nothing to verify against, so the
// callback must refuse rather than record whatever it was sent.
func TestConfirmUnavailableWithoutProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewPaymentHandler(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments/confirm",
		strings.NewReader(`{"payment_id": 123}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Confirm(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
