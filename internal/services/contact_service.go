package services

import (
	"fmt"
	"log/slog"

	"github.com/MaxFerr/hair-cut-api/internal/mail"
)

// Contact-form outcomes; both ship as a 200 with a JSON string, the delivery
// result is the payload.
const (
	MsgMailSent    = "email sent"
	MsgMailNotSent = "email not sent"
)

type ContactService struct {
	mailer mail.Sender
	to     string
	log    *slog.Logger
}

func NewContactService(mailer mail.Sender, to string, log *slog.Logger) *ContactService {
	return &ContactService{mailer: mailer, to: to, log: log}
}

// Send relays a contact-form submission to the configured recipient. Delivery
// failure is reported to the caller as a non-error string, not an HTTP error.
func (s *ContactService) Send(name, email, message string) string {
	err := s.mailer.Send(mail.Message{
		To:      s.to,
		Subject: "Contact form message",
		Body:    fmt.Sprintf("Email:%s Name:%s Message:%s", email, name, message),
	})
	if err != nil {
		s.log.Error("contact email not delivered", "from", email, "error", err)
		return MsgMailNotSent
	}
	return MsgMailSent
}
