package booking

import "github.com/barberhub/barberhub-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"

	// StatusRescheduled marks a moved booking. It counts as active so the
	// booking still holds its new slot.
	StatusRescheduled Status = "rescheduled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// IsActive reports whether the booking occupies its slot for conflict
// purposes.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRescheduled
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition guards UpdateStatus: completed is immutable, cancelled can
// never return to an active state.
func CanTransition(current, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "invalid booking status")
	}
	if current == StatusCompleted && next != StatusCompleted {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidTransition, "completed bookings cannot change status")
	}
	if current == StatusCancelled && IsActive(next) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidTransition, "cancelled bookings cannot be reactivated")
	}
	return nil
}

func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidTransition, "cannot reschedule a completed or cancelled booking")
	}
	return nil
}

func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidTransition, "cannot cancel a completed booking")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
