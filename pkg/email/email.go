// Package email sends owner notifications for contact submissions over SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"

	"github.com/spec-kit/portfolio-site/internal/config"
)

// ContactEmailData holds the data for contact form emails.
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// SendFunc matches smtp.SendMail and is swapped in tests.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers contact notifications to the site owner.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
	send     SendFunc
}

// NewSMTPMailer builds a mailer from notification settings.
func NewSMTPMailer(cfg config.NotificationConfig) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.EmailFrom,
		to:       cfg.EmailTo,
		send:     smtp.SendMail,
	}
}

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New Contact Form Submission</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>New message from your portfolio</h2>
  <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #0f172a; white-space: pre-wrap;">{{.Message}}</div>
  <p style="color: #888; font-size: 12px;">Reply directly to this email to answer {{.SenderEmail}}.</p>
</body>
</html>`))

// Configured reports whether SMTP delivery can be attempted.
func (m *SMTPMailer) Configured() bool {
	return m.host != "" && m.username != "" && m.password != "" && m.to != ""
}

// SendContactEmail renders and sends the notification.
func (m *SMTPMailer) SendContactEmail(data ContactEmailData) error {
	msg, err := m.buildMessage(data)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := m.send(addr, auth, m.from, []string{m.to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(data ContactEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := mime.QEncoding.Encode("UTF-8", "Portfolio Contact: "+headerSafe(data.Subject))
	msg := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.from,
		m.to,
		headerSafe(data.SenderEmail),
		subject,
		body.String(),
	)
	return []byte(msg), nil
}

// headerSafe strips CR and LF so visitor input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(v)
}
