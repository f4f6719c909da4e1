package services

import (
	"context"
	"fmt"

	"campusservice/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRegistrationNotice sends the registration outcome email using the
// "registration" template.
func (s *emailService) SendRegistrationNotice(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration", data)
	if err != nil {
		return fmt.Errorf("render registration template: %w", err)
	}
	if err := s.mailer.Send(data.Contact, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send registration email: %w", err)
	}
	return nil
}

// SendRequestResolved sends the resolution notice using the
// "request_resolved" template.
func (s *emailService) SendRequestResolved(ctx context.Context, data *domain.RequestResolvedEmailData) error {
	if data == nil {
		return fmt.Errorf("request resolved data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("request_resolved", data)
	if err != nil {
		return fmt.Errorf("render request_resolved template: %w", err)
	}
	if err := s.mailer.Send(data.Contact, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send request resolved email: %w", err)
	}
	return nil
}
