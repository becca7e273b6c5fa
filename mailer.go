package main

import (
	"log/slog"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer sends HTML notifications. With incomplete credentials it
// degrades to a logged no-op so the batch jobs keep running.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	m := &SMTPMailer{from: from}
	if host == "" || user == "" || password == "" || from == "" {
		slog.Warn("mail credentials missing, email notifications disabled")
		return m
	}
	m.dialer = gomail.NewDialer(host, port, user, password)
	return m
}

func (m *SMTPMailer) Send(subject, htmlBody, to string) error {
	if m.dialer == nil {
		slog.Warn("mail credentials missing, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
