package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/barberhub-api/internal/config"
)

// Registration must not panic (gin rejects some static/param sibling
// layouts at mount time) and the table must match the published API
// surface: /bookings/me, PUT for status and reschedule, DELETE to cancel,
// /reviews/:barberId for the public listing.
func TestRegisterRoutesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, RegisterRoutes(r, nil, &config.Config{UploadDir: t.TempDir()}))

	mounted := map[string]bool{}
	for _, ri := range r.Routes() {
		mounted[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"POST /api/auth/register/client",
		"POST /api/auth/register/barber",
		"POST /api/auth/login",

		"GET /api/barbers",
		"GET /api/barbers/:id",
		"POST /api/barbers/profile",
		"GET /api/barbers/me/services",
		"POST /api/barbers/me/services",
		"PUT /api/barbers/me/services/:id",
		"DELETE /api/barbers/me/services/:id",
		"GET /api/barbers/me/availability",
		"PUT /api/barbers/me/availability",

		"POST /api/bookings",
		"GET /api/bookings/me",
		"GET /api/bookings/:id",
		"PUT /api/bookings/:id/status",
		"PUT /api/bookings/:id/reschedule",
		"DELETE /api/bookings/:id",

		"POST /api/reviews",
		"GET /api/reviews/:barberId",
		"PUT /api/reviews/:id",
		"DELETE /api/reviews/:id",

		"POST /api/payments/intent",
		"POST /api/payments/confirm",

		"GET /api/admin/users",
		"GET /api/admin/users/:id",
		"PUT /api/admin/users/:id",
		"DELETE /api/admin/users/:id",
		"GET /api/admin/barbershops",
		"PUT /api/admin/barbershops/:id/status",
		"GET /api/admin/bookings",
		"DELETE /api/admin/reviews/:id",
		"GET /api/admin/audit-logs",
	} {
		assert.True(t, mounted[want], "missing route %s", want)
	}
}
