// internal/domain/inquiry/service.go
package inquiry

import (
	"context"
	"fmt"
	"strings"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/pkg/email"
)

// Service relays contact-form inquiries to the sales inbox. Delivery
// failures surface as a generic error; the caller keeps the form state
// and retries manually.
type Service struct {
	emails *email.EmailService
	config *config.Config
}

// NewService creates a new inquiry service
func NewService(emails *email.EmailService, cfg *config.Config) *Service {
	return &Service{
		emails: emails,
		config: cfg,
	}
}

// InquiryRequest represents a contact form submission
type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Subject string `json:"subject"`
}

// Send validates and delivers the inquiry.
func (s *Service) Send(ctx context.Context, req *InquiryRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("New inquiry from %s", req.Name)
	}

	data := email.InquiryData{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.emails.SendInquiryEmail(ctx, data, subject); err != nil {
		return fmt.Errorf("failed to send inquiry: %w", err)
	}
	return nil
}

func (s *Service) validate(req *InquiryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
