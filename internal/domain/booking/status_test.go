package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barberhub/barberhub-api/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name     string
		current  Status
		next     Status
		wantCode string
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, ""},
		{"pending to cancelled", StatusPending, StatusCancelled, ""},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, ""},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, ""},
		{"rescheduled to confirmed", StatusRescheduled, StatusConfirmed, ""},
		{"completed is immutable", StatusCompleted, StatusCancelled, httperr.CodeInvalidTransition},
		{"completed cannot reopen", StatusCompleted, StatusPending, httperr.CodeInvalidTransition},
		{"cancelled cannot reactivate", StatusCancelled, StatusConfirmed, httperr.CodeInvalidTransition},
		{"cancelled cannot go pending", StatusCancelled, StatusPending, httperr.CodeInvalidTransition},
		{"cancelled to completed allowed", StatusCancelled, StatusCompleted, ""},
		{"unknown status", StatusPending, Status("sleeping"), httperr.CodeInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.next)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.wantCode), "got %v", err)
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(StatusConfirmed))
	assert.True(t, IsActive(StatusRescheduled))
	assert.False(t, IsActive(StatusCancelled))
	assert.False(t, IsActive(StatusCompleted))
}

func TestCanReschedule(t *testing.T) {
	assert.NoError(t, CanReschedule(StatusPending))
	assert.NoError(t, CanReschedule(StatusConfirmed))
	assert.NoError(t, CanReschedule(StatusRescheduled))
	assert.Error(t, CanReschedule(StatusCompleted))
	assert.Error(t, CanReschedule(StatusCancelled))
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusCancelled))
	assert.Error(t, CanCancel(StatusCompleted))
}

func TestValidFilter(t *testing.T) {
	assert.True(t, ValidFilter(FilterAll))
	assert.True(t, ValidFilter(FilterUpcoming))
	assert.True(t, ValidFilter(FilterPast))
	assert.True(t, ValidFilter(FilterRescheduled))
	assert.False(t, ValidFilter(ListFilter("tomorrow")))
}
