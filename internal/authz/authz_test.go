package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barberhub/barberhub-api/internal/models"
)

var (
	client   = Caller{ID: 1, Role: models.RoleClient}
	owner    = Caller{ID: 2, Role: models.RoleBarber}
	admin    = Caller{ID: 3, Role: models.RoleAdmin}
	stranger = Caller{ID: 9, Role: models.RoleClient}

	refs = BookingRefs{ClientID: 1, BarberOwnerID: 2}
)

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole(client, models.RoleClient))
	assert.True(t, HasRole(owner, models.RoleBarber, models.RoleAdmin))
	assert.False(t, HasRole(client, models.RoleBarber, models.RoleAdmin))
}

func TestCanAccessBooking(t *testing.T) {
	assert.True(t, CanAccessBooking(client, refs))
	assert.True(t, CanAccessBooking(owner, refs))
	assert.True(t, CanAccessBooking(admin, refs))
	assert.False(t, CanAccessBooking(stranger, refs))
}

func TestCanManageBookingStatus(t *testing.T) {
	assert.False(t, CanManageBookingStatus(client, refs))
	assert.True(t, CanManageBookingStatus(owner, refs))
	assert.True(t, CanManageBookingStatus(admin, refs))
}

func TestReviewPredicates(t *testing.T) {
	// Authors edit their own reviews; admins may delete but never edit.
	assert.True(t, CanUpdateReview(client, 1))
	assert.False(t, CanUpdateReview(admin, 1))
	assert.False(t, CanUpdateReview(stranger, 1))

	assert.True(t, CanDeleteReview(client, 1))
	assert.True(t, CanDeleteReview(admin, 1))
	assert.False(t, CanDeleteReview(stranger, 1))
}

func TestCanManageService(t *testing.T) {
	assert.True(t, CanManageService(5, 5))
	assert.False(t, CanManageService(5, 6))
	assert.False(t, CanManageService(0, 0))
}
