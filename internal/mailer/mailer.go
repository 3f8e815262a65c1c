// Package mailer sends transactional email over SMTP.
package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/farberstyle-netizen/holistic-dog-site/internal/mailer Sender

import (
	"gopkg.in/gomail.v2"
)

// Sender is the narrow surface services depend on.
type Sender interface {
	SendHTML(to []string, subject, htmlBody string) error
}

type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
	}
}

func (m *Mailer) SendHTML(to []string, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
