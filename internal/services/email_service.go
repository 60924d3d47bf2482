package services

import (
	"fmt"

	"chirpynosh_backend/internal/config"
	"chirpynosh_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// EmailService forwards lifecycle events to an external inbox. Delivery is
// best-effort: failures are logged and never propagate to the caller's
// transaction outcome.
type EmailService interface {
	SendClaimEvent(subject, body string) error
	SendExpirationDigest(subject, body string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	fromEmail   string
	notifyEmail string
}

func NewEmailService(cfg *config.Config) EmailService {
	if !cfg.Email.Enabled {
		return &noopEmailService{}
	}
	return &emailService{
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
		),
		fromEmail:   cfg.Email.FromEmail,
		notifyEmail: cfg.Email.NotifyEmail,
	}
}

func (s *emailService) SendClaimEvent(subject, body string) error {
	return s.send(subject, body)
}

func (s *emailService) SendExpirationDigest(subject, body string) error {
	return s.send(subject, body)
}

func (s *emailService) send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.fromEmail)
	m.SetHeader("To", s.notifyEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	logger.Debug("email sent", "subject", subject)
	return nil
}

// noopEmailService is used when email is disabled and in tests.
type noopEmailService struct{}

func NewNoopEmailService() EmailService { return &noopEmailService{} }

func (s *noopEmailService) SendClaimEvent(subject, body string) error       { return nil }
func (s *noopEmailService) SendExpirationDigest(subject, body string) error { return nil }
