package gateway

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer is the opaque "send notification" capability. Sends are
// best-effort: callers log failures and never surface them.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers notification mail over SMTP.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("StayVista <%s>", m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return dialer.DialAndSend(msg)
}
