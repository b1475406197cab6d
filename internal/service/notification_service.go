package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/config"
	"github.com/spec-kit/portfolio-site/internal/events"
	"github.com/spec-kit/portfolio-site/pkg/email"
)

// Mailer sends the owner a copy of a contact submission.
type Mailer interface {
	Configured() bool
	SendContactEmail(data email.ContactEmailData) error
}

// NotificationService delivers owner notifications for domain events.
type NotificationService struct {
	mailer Mailer
	client *http.Client
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(cfg config.NotificationConfig, mailer Mailer, client *http.Client, logger *zap.Logger) *NotificationService {
	if client == nil {
		client = http.DefaultClient
	}
	return &NotificationService{
		mailer: mailer,
		client: client,
		logger: logger,
		cfg:    cfg,
	}
}

// Deliver handles one event. Email and webhook failures are both attempted
// and reported together.
func (n *NotificationService) Deliver(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventContactMessageReceived:
		return n.handleContactMessageReceived(ctx, event)
	default:
		n.logger.Debug("no notification for event", zap.String("event_type", string(event.Type)))
		return nil
	}
}

func (n *NotificationService) handleContactMessageReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactMessageReceivedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	n.logger.Info("ContactMessageReceived",
		zap.String("submission_id", event.SubjectID),
		zap.String("email", payload.Email))

	var errs []string
	if err := n.sendEmailNotification(payload); err != nil {
		errs = append(errs, err.Error())
	}
	if err := n.sendWebhookNotification(ctx, event); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("notification delivery: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (n *NotificationService) sendEmailNotification(payload events.ContactMessageReceivedPayload) error {
	if n.mailer == nil || !n.mailer.Configured() {
		return nil
	}
	return n.mailer.SendContactEmail(email.ContactEmailData{
		SenderName:  payload.Name,
		SenderEmail: payload.Email,
		Subject:     payload.Subject,
		Message:     payload.Message,
	})
}

func (n *NotificationService) sendWebhookNotification(ctx context.Context, event events.Event) error {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode webhook: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: status %d", resp.StatusCode)
	}
	n.logger.Debug("webhook delivered",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID))
	return nil
}
