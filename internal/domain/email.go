package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the registration outcome email.
type RegistrationEmailData struct {
	Contact     string
	StudentName string
	EventTitle  string
	EventDate   string
	Status      string
}

// RequestResolvedEmailData holds data for the service-request-resolved email.
type RequestResolvedEmailData struct {
	Contact     string
	StudentName string
	RequestID   string
	Category    string
}

// EmailService defines the contract for sending domain-level emails.
// Implementations are best-effort collaborators of the shell: callers log
// failures instead of failing the triggering operation.
type EmailService interface {
	SendRegistrationNotice(ctx context.Context, data *RegistrationEmailData) error
	SendRequestResolved(ctx context.Context, data *RequestResolvedEmailData) error
}
