package services

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"planescheduler/flightline/internal/logging"
	"planescheduler/flightline/internal/metrics"
	"planescheduler/flightline/internal/models/entities"
)

const reservationMailTemplate = `
<p>A new reservation has been booked for <strong>{{.TailNumber}}</strong>.</p>
<ul>
  <li>Category: {{.Title}}</li>
  <li>Booked by: {{.Username}}</li>
  <li>From: {{.StartTime.Format "Mon, 02 Jan 2006 15:04 MST"}}</li>
  <li>To: {{.EndTime.Format "Mon, 02 Jan 2006 15:04 MST"}}</li>
</ul>
`

// NotificationService sends reservation emails to aircraft subscribers.
// Delivery is best effort: failures are logged and counted, never surfaced
// to the caller who booked the reservation.
type NotificationService struct {
	dialer  *gomail.Dialer
	from    string
	tmpl    *template.Template
	metrics *metrics.MetricsRegistry
	enabled bool
}

// NewNotificationService reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS
// and SMTP_FROM. An empty SMTP_HOST disables the service entirely.
func NewNotificationService(reg *metrics.MetricsRegistry) *NotificationService {
	svc := &NotificationService{
		tmpl:    template.Must(template.New("reservation").Parse(reservationMailTemplate)),
		metrics: reg,
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logging.Warn("SMTP_HOST not set, reservation notifications disabled")
		return svc
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	svc.dialer = gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	svc.from = os.Getenv("SMTP_FROM")
	if svc.from == "" {
		svc.from = "flightline@localhost"
	}
	svc.enabled = true
	return svc
}

func (s *NotificationService) Enabled() bool {
	return s.enabled
}

// ReservationBooked emails every subscriber of the reserved aircraft.
func (s *NotificationService) ReservationBooked(res *entities.ReservationDetail, recipients []string) {
	if !s.enabled || len(recipients) == 0 {
		return
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, res); err != nil {
		logging.Error("failed to render notification template", "error", err)
		s.metrics.NotificationFailuresTotal.Inc()
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("New reservation for %s", res.TailNumber))
	msg.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		logging.Error("failed to send reservation notification",
			"aircraft", res.TailNumber,
			"recipients", len(recipients),
			"error", err)
		s.metrics.NotificationFailuresTotal.Inc()
		return
	}

	s.metrics.NotificationsSentTotal.Inc()
	logging.Info("reservation notification sent",
		"aircraft", res.TailNumber,
		"recipients", len(recipients))
}
