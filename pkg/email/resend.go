package email

import (
	"bytes"
	"html/template"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(apiKey),
		from:         from,
		fromName:     fromName,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

// SendVerificationCode mails the 6-digit signup code. The code expires 15
// minutes after it was stored.
func (s *EmailService) SendVerificationCode(email, code string) error {
	templateData := map[string]interface{}{
		"Code": code,
		"Year": time.Now().Year(),
	}

	html, err := s.parseTemplate("verification-code.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse verification template", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Verify Your Daud Travel Account",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send verification email",
			zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("verification email sent",
		zap.String("email", email), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, templateName))
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}
