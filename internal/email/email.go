package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"feedbackhub/internal/config"
	"feedbackhub/internal/models"
)

// Service sends staff notification emails for new feedback submissions.
type Service struct {
	cfg     *config.Config
	enabled bool
}

// NewService creates a new email service.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		enabled: cfg.IsEmailEnabled(),
	}

	if s.enabled {
		log.Printf("Email notifications enabled (SMTP: %s:%d)", cfg.SMTPHost, cfg.SMTPPort)
	} else {
		log.Println("Email notifications disabled (SMTP not configured)")
	}

	return s
}

// IsEnabled returns true if email is enabled.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// NotifyNewFeedback sends the staff address a summary of a new submission.
// A disabled service is a no-op.
func (s *Service) NotifyNewFeedback(record *models.FeedbackRecord) error {
	if !s.enabled {
		return nil
	}

	subject := fmt.Sprintf("New feedback #%d (%s)", record.ID, record.Category)
	body := buildFeedbackBody(record)
	return s.send([]string{s.cfg.NotifyEmail}, subject, body)
}

// buildFeedbackBody renders the plain-text notification for a record.
func buildFeedbackBody(record *models.FeedbackRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New feedback received for %s\r\n\r\n", record.Company)
	fmt.Fprintf(&b, "Category:  %s\r\n", record.Category)
	if record.HasRating() {
		fmt.Fprintf(&b, "Rating:    %d/5\r\n", record.Rating)
	} else {
		b.WriteString("Rating:    none\r\n")
	}
	fmt.Fprintf(&b, "Submitted: %s\r\n\r\n", record.Timestamp)
	fmt.Fprintf(&b, "Feedback:\r\n%s\r\n\r\n", record.Original)
	fmt.Fprintf(&b, "Suggested action:\r\n%s\r\n", record.Solution)

	return b.String()
}

// send delivers a plain-text email over SMTP.
func (s *Service) send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	from := s.cfg.SMTPFrom
	if s.cfg.SMTPFromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.SMTPFromName, s.cfg.SMTPFrom)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var a smtp.Auth
	if s.cfg.SMTPUsername != "" {
		a = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, a, s.cfg.SMTPFrom, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
