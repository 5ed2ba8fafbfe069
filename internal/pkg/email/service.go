// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/allithy/storefront-backend/internal/config"
)

// EmailService sends transactional email through the configured provider
type EmailService struct {
	config *config.Config
	client *http.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	switch s.config.External.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	case "sendgrid":
		return s.sendSendGridEmail(ctx, email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.External.Email.Provider)
	}
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New customer inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// InquiryData carries the contact-form fields into the inquiry template.
type InquiryData struct {
	Name    string
	Email   string
	Message string
}

// SendInquiryEmail delivers a contact-form submission to the sales inbox.
func (s *EmailService) SendInquiryEmail(ctx context.Context, data InquiryData, subject string) error {
	var body bytes.Buffer
	if err := inquiryTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render inquiry template: %w", err)
	}

	email := &Email{
		To:          []string{s.config.External.Email.InquiryEmail},
		Subject:     subject,
		HTMLContent: body.String(),
		ReplyTo:     data.Email,
	}

	return s.SendEmail(ctx, email)
}
