package mailer

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/barberhub/barberhub-api/internal/models"
)

// Mailer sends booking notifications over SMTP. Nil-safe: when SMTP is not
// configured every send is a no-op, and sends never fail a request.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New(host string, port int, user, pass, from string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *Mailer) send(to, subject, body string) {
	if m == nil || to == "" {
		return
	}
	go func() {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/plain", body)

		d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
		if err := d.DialAndSend(msg); err != nil {
			log.Printf("mailer: send to %s failed: %v", to, err)
		}
	}()
}

func (m *Mailer) BookingCreated(clientEmail, barberEmail string, b *models.Booking) {
	when := b.Date.Format(time.RFC1123)
	m.send(clientEmail, "Booking received",
		fmt.Sprintf("Your booking #%d for %s is %s.", b.ID, when, b.Status))
	m.send(barberEmail, "New booking",
		fmt.Sprintf("You have a new booking #%d for %s.", b.ID, when))
}

func (m *Mailer) BookingStatusChanged(clientEmail string, b *models.Booking) {
	m.send(clientEmail, "Booking status update",
		fmt.Sprintf("Your booking #%d for %s is now %s.",
			b.ID, b.Date.Format(time.RFC1123), b.Status))
}

func (m *Mailer) BookingCancelled(clientEmail, barberEmail string, b *models.Booking) {
	when := b.Date.Format(time.RFC1123)
	m.send(clientEmail, "Booking cancelled",
		fmt.Sprintf("Your booking #%d for %s has been cancelled.", b.ID, when))
	m.send(barberEmail, "Booking cancelled",
		fmt.Sprintf("Booking #%d for %s has been cancelled.", b.ID, when))
}
