package email

import (
	"errors"
	"mime"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-site/internal/config"
)

func testMailer() *SMTPMailer {
	return NewSMTPMailer(config.NotificationConfig{
		EmailFrom: "site@example.com",
		EmailTo:   "owner@example.com",
		SMTPHost:  "smtp.example.com",
		SMTPPort:  "587",
		SMTPUser:  "user",
		SMTPPass:  "pass",
	})
}

func TestSendContactEmail(t *testing.T) {
	m := testMailer()
	require.True(t, m.Configured())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	err := m.SendContactEmail(ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "ada@example.com",
		Subject:     "Hello\r\nBcc: victim@example.com",
		Message:     "<b>hi</b>",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, gotMsg, "Subject: Portfolio Contact: Hello Bcc: victim@example.com\r\n")
	assert.False(t, strings.Contains(gotMsg, "\r\nBcc:"))
	assert.Contains(t, gotMsg, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestSendContactEmailEncodesNonASCIISubject(t *testing.T) {
	m := testMailer()
	var gotMsg string
	m.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = string(msg)
		return nil
	}

	require.NoError(t, m.SendContactEmail(ContactEmailData{
		SenderEmail: "ada@example.com",
		Subject:     "Café menu",
		Message:     "hi",
	}))

	var subject string
	for _, line := range strings.Split(gotMsg, "\r\n") {
		if strings.HasPrefix(line, "Subject: ") {
			subject = strings.TrimPrefix(line, "Subject: ")
		}
	}
	assert.True(t, strings.HasPrefix(subject, "=?UTF-8?q?"), subject)
	assert.NotContains(t, subject, "é")

	decoded, err := new(mime.WordDecoder).DecodeHeader(subject)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: Café menu", decoded)
}

func TestSendContactEmailError(t *testing.T) {
	m := testMailer()
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("relay denied")
	}
	err := m.SendContactEmail(ContactEmailData{SenderEmail: "ada@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay denied")
}

func TestConfigured(t *testing.T) {
	m := NewSMTPMailer(config.NotificationConfig{SMTPHost: "smtp.example.com"})
	assert.False(t, m.Configured())
}
