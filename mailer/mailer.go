package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Every caller treats a send failure as
// best-effort: log it, never fail the request.
type Mailer interface {
	SendAssignmentEmail(to, firstName, bikeName, bikePlate string) error
	SendPasswordResetEmail(to, resetURL string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) SendAssignmentEmail(to, firstName, bikeName, bikePlate string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour bike rental application has been approved and a bike is now assigned to you.\n\nBike: %s\nPlate: %s\n\nPlease claim it at the motorpool office with your student ID.\n",
		firstName, bikeName, bikePlate,
	)
	return m.send(to, "Your bike is ready", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(to, resetURL string) error {
	body := fmt.Sprintf(
		"We received a request to reset your password.\n\nReset it here (valid for 1 hour):\n%s\n\nIf you did not request this, ignore this email.\n",
		resetURL,
	)
	return m.send(to, "Password reset", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// Noop is used when SMTP is not configured (and in tests).
type Noop struct{}

func (Noop) SendAssignmentEmail(to, firstName, bikeName, bikePlate string) error { return nil }
func (Noop) SendPasswordResetEmail(to, resetURL string) error                    { return nil }
