package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/hairloom/salon-booking/internal/config"
)

type Provider interface {
	Send(to, subject, body string) error
}

// NewProvider returns the SMTP provider when SMTP is configured and a
// log-only provider otherwise, so development setups never need a relay.
func NewProvider(cfg *config.Config) Provider {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return logProvider{sender: cfg.SMTPSender}
	}
	return smtpProvider{
		addr:   cfg.SMTPHost + ":" + cfg.SMTPPort,
		host:   cfg.SMTPHost,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		sender: cfg.SMTPSender,
	}
}

type logProvider struct {
	sender string
}

func (p logProvider) Send(to, subject, body string) error {
	log.Printf("mail (mock) from=%s to=%s subject=%q\n%s", p.sender, to, subject, body)
	return nil
}

type smtpProvider struct {
	addr   string
	host   string
	user   string
	pass   string
	sender string
}

func (p smtpProvider) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		p.sender, to, subject, body,
	)

	auth := smtp.PlainAuth("", p.user, p.pass, p.host)
	return smtp.SendMail(p.addr, auth, p.sender, []string{to}, []byte(msg))
}
