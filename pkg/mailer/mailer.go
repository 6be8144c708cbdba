// Package mailer delivers activation links over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"legal-assistant/internal/data/entity"
	"legal-assistant/pkg/utils"
)

type Mailer interface {
	SendActivation(email, link string) error
}

type smtpMailer struct {
	config utils.EmailConfig
}

func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendActivation(email, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Activate your Legal AI account")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Welcome to Legal AI!\nPlease activate your account by visiting:\n%s\n", link))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrEmailDelivery, err)
	}

	return nil
}

// nopMailer backs deployments without SMTP; the activation link is still
// returned to the caller, matching the dashboard-only setups.
type nopMailer struct{}

func NewNopMailer() Mailer {
	return &nopMailer{}
}

func (m *nopMailer) SendActivation(string, string) error {
	return nil
}
