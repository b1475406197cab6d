package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/domain"
	"github.com/spec-kit/portfolio-site/internal/events"
	"github.com/spec-kit/portfolio-site/internal/observability"
	"github.com/spec-kit/portfolio-site/internal/ratelimit"
	"github.com/spec-kit/portfolio-site/internal/repository"
	"github.com/spec-kit/portfolio-site/internal/validation"
	apperrors "github.com/spec-kit/portfolio-site/pkg/util/errorutil"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ContactService accepts contact submissions posted by the site's form.
type ContactService struct {
	messages   repository.ContactMessageRepository
	limiter    ratelimit.Limiter
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	ipSalt     string
	now        func() time.Time
}

// ContactDependencies bundles collaborators for the contact service.
type ContactDependencies struct {
	MessageRepo repository.ContactMessageRepository
	Limiter     ratelimit.Limiter
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	IPHashSalt  string
}

// ContactMeta describes the request a submission arrived on.
type ContactMeta struct {
	ClientIP  string
	UserAgent string
}

// NewContactService constructs the service.
func NewContactService(deps ContactDependencies) *ContactService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		messages:   deps.MessageRepo,
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		ipSalt:     deps.IPHashSalt,
		now:        time.Now,
	}
}

// Submit rate-limits, validates, stores and announces a contact message.
func (s *ContactService) Submit(ctx context.Context, input validation.ContactInput, meta ContactMeta) (*domain.ContactSubmission, error) {
	hashedIP := s.hashIP(meta.ClientIP)

	if s.limiter != nil {
		decision, err := s.limiter.Allow(ctx, hashedIP)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		if !decision.Allowed {
			s.metrics.RecordContact("rate_limited")
			return nil, apperrors.NewTooManyRequests("too many messages; please try again later")
		}
	}

	msg, fieldErrs := validation.ValidateContact(input)
	if len(fieldErrs) > 0 {
		s.metrics.RecordContact("invalid")
		return nil, apperrors.NewValidationError("invalid contact message", fieldErrs.Messages())
	}

	sub := &domain.ContactSubmission{
		ID:        uuid.NewString(),
		Message:   msg,
		HashedIP:  hashedIP,
		UserAgent: truncate(meta.UserAgent, 512),
	}
	if err := s.messages.Create(ctx, sub); err != nil {
		s.metrics.RecordContact("failed")
		return nil, apperrors.NewInternalError(err)
	}
	s.metrics.RecordContact("accepted")
	s.logger.Info("contact message stored", zap.String("submission_id", sub.ID))

	s.publishEvent(ctx, events.Event{
		Type:      events.EventContactMessageReceived,
		SubjectID: sub.ID,
		Payload: events.ContactMessageReceivedPayload{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
		},
	})
	return sub, nil
}

// ContactPage is one page of the inbox with the paging actually applied.
type ContactPage struct {
	Items  []domain.ContactSubmission
	Total  int64
	Limit  int
	Offset int
}

// List returns stored submissions newest first. Limit and offset are clamped
// and the applied values are reported on the page.
func (s *ContactService) List(ctx context.Context, limit, offset int) (*ContactPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.messages.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.messages.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// Get fetches one submission.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewNotFound("contact message", map[string]any{"id": id})
	}
	sub, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact message", map[string]any{"id": id})
		}
		return nil, err
	}
	return sub, nil
}

func (s *ContactService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Debug("event delivery incomplete", zap.String("event_id", event.ID), zap.Error(err))
	}
}

// hashIP keeps rate limiting per client without storing raw addresses.
func (s *ContactService) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.ipSalt))
	return hex.EncodeToString(sum[:])[:16]
}

func truncate(v string, max int) string {
	v = strings.TrimSpace(v)
	if len(v) <= max {
		return v
	}
	for max > 0 && !utf8.RuneStart(v[max]) {
		max--
	}
	return v[:max]
}
