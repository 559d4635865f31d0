// Package mail sends transactional email over SMTP. Delivery is best-effort:
// callers decide whether a failure reaches the client (contact form) or is
// only logged (reset links, where the token is already persisted).
package mail

import (
	"fmt"

	"github.com/MaxFerr/hair-cut-api/internal/config"
	gomail "gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(msg Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender from config. With no SMTP host configured it
// returns a disabled sender whose sends always fail, so the rest of the app
// keeps working without a relay.
func NewSMTPSender(cfg config.SMTP) Sender {
	if !cfg.Enabled() {
		return disabledSender{}
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

type disabledSender struct{}

func (disabledSender) Send(Message) error {
	return fmt.Errorf("smtp is not configured")
}
