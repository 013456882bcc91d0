package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Config holds email service configuration
type Config struct {
	// Provider type: "sendgrid" or "smtp"
	Provider string

	FromEmail string
	FromName  string

	// SendGrid configuration
	SendGridAPIKey string

	// SMTP configuration (for Mailhog or other SMTP servers)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool

	// Base URL for links in emails
	BaseURL string
}

// DefaultConfig returns a default configuration for development (Mailhog)
func DefaultConfig() *Config {
	return &Config{
		Provider:   "smtp",
		FromEmail:  "noreply@voxdesk.io",
		FromName:   "VoxDesk",
		SMTPHost:   "localhost",
		SMTPPort:   1025, // Mailhog default port
		SMTPUseTLS: false,
		BaseURL:    "http://localhost:3000",
	}
}

// Service sends transactional notifications for the voice pipeline's backend
// operations: welcome mails for directly created users and approval requests
// for users created pending super-admin approval.
type Service struct {
	config    *Config
	provider  Provider
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewService(config *Config, log *zap.Logger) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
		log:       log,
	}

	switch config.Provider {
	case "sendgrid":
		if config.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(config.SendGridAPIKey, config.FromEmail, config.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUsername,
			config.SMTPPassword,
			config.FromEmail,
			config.FromName,
			config.SMTPUseTLS,
		)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", config.Provider)
	}

	s.templates["welcome"] = template.Must(template.New("welcome").Parse(welcomeTemplate))
	s.templates["approval_request"] = template.Must(template.New("approval_request").Parse(approvalRequestTemplate))

	return s, nil
}

// Send sends a plain-text email
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("sending email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, body, false); err != nil {
		s.log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcome greets a newly created, already approved user.
func (s *Service) SendWelcome(ctx context.Context, user *domain.User, tempPassword string) error {
	return s.sendTemplate(ctx, user.Email, "welcome", map[string]interface{}{
		"Subject":      "Welcome to VoxDesk",
		"UserName":     user.FullName,
		"Email":        user.Email,
		"TempPassword": tempPassword,
	})
}

// SendApprovalRequest asks a super admin to review a user created pending
// approval.
func (s *Service) SendApprovalRequest(ctx context.Context, approver *domain.User, pending *domain.User) error {
	return s.sendTemplate(ctx, approver.Email, "approval_request", map[string]interface{}{
		"Subject":      "User pending your approval",
		"ApproverName": approver.FullName,
		"UserName":     pending.FullName,
		"UserEmail":    pending.Email,
		"UserRole":     string(pending.Role),
	})
}

func (s *Service) sendTemplate(ctx context.Context, to, name string, data map[string]interface{}) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	data["BaseURL"] = s.config.BaseURL

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject, _ := data["Subject"].(string)
	if subject == "" {
		subject = "Notification from VoxDesk"
	}

	if err := s.provider.Send(ctx, to, subject, buf.String(), true); err != nil {
		s.log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
