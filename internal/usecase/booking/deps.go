package booking

import (
	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/models"
)

// AuditSink is satisfied by *audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// Notifier is satisfied by *mailer.Mailer. Notifications are best-effort;
// implementations must never fail the operation.
type Notifier interface {
	BookingCreated(clientEmail, barberEmail string, b *models.Booking)
	BookingStatusChanged(clientEmail string, b *models.Booking)
	BookingCancelled(clientEmail, barberEmail string, b *models.Booking)
}

type noopNotifier struct{}

func (noopNotifier) BookingCreated(string, string, *models.Booking)   {}
func (noopNotifier) BookingStatusChanged(string, *models.Booking)     {}
func (noopNotifier) BookingCancelled(string, string, *models.Booking) {}

// NoopNotifier is used when SMTP is not configured.
var NoopNotifier Notifier = noopNotifier{}
