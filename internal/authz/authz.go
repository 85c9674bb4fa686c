// Package authz centralizes the ownership and role checks that were
// previously duplicated across booking, review, and service operations.
// Predicates are pure: callers load the records and pass the owning ids in.
package authz

import "github.com/barberhub/barberhub-api/internal/models"

// Caller is the authenticated identity, threaded explicitly into every
// operation instead of living in ambient request state.
type Caller struct {
	ID   uint
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// HasRole replaces the old role-list middleware: a plain allow-list
// predicate called at the top of each operation.
func HasRole(c Caller, roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// BookingRefs carries the ownership references of a booking.
type BookingRefs struct {
	ClientID      uint
	BarberOwnerID uint // account id behind the booking's barber profile
}

// CanAccessBooking covers both viewing and cancelling: the booking's
// client, the owning barber's account, or an admin.
func CanAccessBooking(c Caller, b BookingRefs) bool {
	return c.ID == b.ClientID || c.ID == b.BarberOwnerID || c.IsAdmin()
}

// CanManageBookingStatus: only the owning barber's account or an admin.
func CanManageBookingStatus(c Caller, b BookingRefs) bool {
	return c.ID == b.BarberOwnerID || c.IsAdmin()
}

// CanUpdateReview: author only; admins may delete but not edit.
func CanUpdateReview(c Caller, authorID uint) bool {
	return c.ID == authorID
}

// CanDeleteReview: author or admin.
func CanDeleteReview(c Caller, authorID uint) bool {
	return c.ID == authorID || c.IsAdmin()
}

// CanManageService: the caller's barber profile must own the service.
func CanManageService(callerBarberID, serviceBarberID uint) bool {
	return callerBarberID != 0 && callerBarberID == serviceBarberID
}
