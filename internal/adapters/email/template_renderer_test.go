package email

import (
	"testing"

	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Registration(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.RegistrationEmailData{
		Contact:     "alice@campus.edu",
		StudentName: "Alice",
		EventTitle:  "AI Workshop",
		EventDate:   "2025-09-20",
		Status:      domain.RegistrationConfirmed,
	}
	subject, htmlBody, textBody, err := r.Render("registration", data)
	require.NoError(t, err)
	assert.Equal(t, "Your registration for AI Workshop: Confirmed", subject)
	assert.Contains(t, htmlBody, "Alice")
	assert.Contains(t, textBody, "AI Workshop")
	assert.Contains(t, textBody, "seat is confirmed")
}

func TestTemplateRenderer_Registration_Waitlisted(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.RegistrationEmailData{
		StudentName: "Bob",
		EventTitle:  "Tiny Session",
		EventDate:   "2025-09-22",
		Status:      domain.RegistrationWaitlisted,
	}
	_, _, textBody, err := r.Render("registration", data)
	require.NoError(t, err)
	assert.Contains(t, textBody, "waitlist")
}

func TestTemplateRenderer_RequestResolved(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.RequestResolvedEmailData{
		Contact:     "alice@campus.edu",
		StudentName: "Alice",
		RequestID:   "R001",
		Category:    "electrical",
	}
	subject, htmlBody, textBody, err := r.Render("request_resolved", data)
	require.NoError(t, err)
	assert.Equal(t, "Service request R001 resolved", subject)
	assert.Contains(t, htmlBody, "R001")
	assert.Contains(t, textBody, "electrical")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("nope", nil)
	require.Error(t, err)
}
