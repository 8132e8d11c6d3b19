package mail

import (
	"gopkg.in/gomail.v2"
)

// Mailerはトランザクションメール送信の約束。
type Mailer interface {
	Send(to string, subject string, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// DI
func NewSMTPMailer(host string, port int, user string, password string, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
